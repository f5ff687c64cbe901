package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tradehub/constants"
	"tradehub/models"
	"tradehub/utils"
)

// Message affiché aux fournisseurs après l'inscription : l'abonnement de
// 5 USD se règle par mobile money ou par carte (POST /suppliers/subscription/charge)
const SupplierRegistrationMessage = "Compte fournisseur créé! Veuillez effectuer le paiement de 5USD au +234979401982 ou +243842578529"
const SimpleRegistrationMessage = "Compte créé avec succès!"

// currentUserID relit l'identifiant posé par le middleware d'authentification
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := raw.(string)
	if !ok {
		return primitive.NilObjectID, false
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return objID, true
}

// CreateProfile insère la fiche profil, seconde étape de l'inscription.
// Les échecs ici sont signalés comme erreurs de création de profil,
// distinctes des erreurs d'authentification : l'identité existe déjà.
func CreateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	type ProfileInput struct {
		UserType string `json:"user_type" binding:"required,oneof=simple supplier"`
		FullName string `json:"full_name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Country  string `json:"country" binding:"required"`
		City     string `json:"city" binding:"required"`
		Address  string `json:"address" binding:"required"`
		Bio      string `json:"bio"`
	}

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez remplir tous les champs", "details": err.Error()})
		return
	}

	if !constants.IsValidCountry(input.Country) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pays non pris en charge"})
		return
	}

	// l'identité doit être visible dans le magasin avant l'insertion du
	// profil ; sinon le client réessaie au lieu de dormir un délai fixe
	identity, err := models.FindAuthUserByID(userID)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Identité pas encore disponible, réessayez",
			"code":  "identity_not_ready",
		})
		return
	} else if err != nil {
		log.Println("Error checking identity:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la création du profil"})
		return
	}

	profile, err := models.InsertProfile(models.Profile{
		ID:       userID,
		UserType: input.UserType,
		FullName: input.FullName,
		Phone:    input.Phone,
		Country:  input.Country,
		City:     input.City,
		Address:  input.Address,
		Bio:      input.Bio,
		// avatar_url reste vide à l'inscription
	})
	if mongo.IsDuplicateKeyError(err) {
		c.JSON(http.StatusConflict, gin.H{"error": "Profil déjà créé pour ce compte"})
		return
	} else if err != nil {
		log.Println("Profile creation error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la création du profil"})
		return
	}

	message := SimpleRegistrationMessage
	if profile.UserType == models.UserTypeSupplier {
		message = SupplierRegistrationMessage
	}

	// email de bienvenue en tâche de fond, l'échec n'annule rien
	go func() {
		if err := utils.SendWelcomeEmail(identity.Email, profile.FullName, profile.UserType); err != nil {
			log.Println("Failed to send welcome email:", err)
		}
	}()

	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"profile": profile,
	})
}

// GetMe retourne l'identité et le profil du compte connecté. Un profil
// absent n'est pas une erreur : les inscriptions fraîches peuvent ne pas
// encore avoir leur fiche.
func GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	identity, err := models.FindAuthUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Compte introuvable"})
		return
	}

	profile, err := models.GetProfileByID(userID)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, gin.H{"user": identity, "profile": nil})
		return
	} else if err != nil {
		log.Println("Error fetching profile:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la lecture du profil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": identity, "profile": profile})
}

// UpdateMyProfile applique un patch partiel puis renvoie la fiche relue
func UpdateMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	type UpdateInput struct {
		FullName  *string `json:"full_name"`
		Phone     *string `json:"phone"`
		Country   *string `json:"country"`
		City      *string `json:"city"`
		Address   *string `json:"address"`
		AvatarURL *string `json:"avatar_url"`
		Bio       *string `json:"bio"`
	}

	var input UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	patch := bson.M{}
	if input.FullName != nil {
		patch["full_name"] = *input.FullName
	}
	if input.Phone != nil {
		patch["phone"] = *input.Phone
	}
	if input.Country != nil {
		if !constants.IsValidCountry(*input.Country) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pays non pris en charge"})
			return
		}
		patch["country"] = *input.Country
	}
	if input.City != nil {
		patch["city"] = *input.City
	}
	if input.Address != nil {
		patch["address"] = *input.Address
	}
	if input.AvatarURL != nil {
		patch["avatar_url"] = *input.AvatarURL
	}
	if input.Bio != nil {
		patch["bio"] = *input.Bio
	}

	if len(patch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun champ à mettre à jour"})
		return
	}

	profile, err := models.UpdateProfileFields(userID, patch)
	if err != nil {
		log.Println("Profile update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la mise à jour du profil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
