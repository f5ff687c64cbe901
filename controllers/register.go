package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"tradehub/models"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Register crée l'identité d'authentification. La fiche profil est une
// seconde étape séparée (POST /profiles) : un échec ici est une erreur
// d'authentification, un échec là-bas une erreur de création de profil.
func Register(c *gin.Context) {
	type RegisterInput struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez remplir tous les champs", "details": err.Error()})
		return
	}

	// refuser les emails déjà enregistrés
	_, err := models.FindAuthUserByEmail(input.Email)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte existe déjà avec cet email"})
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la création du compte"})
		return
	}

	user, err := models.InsertAuthUser(models.AuthUser{
		Email:        input.Email,
		PasswordHash: hashed,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la création du compte"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Identité créée",
		"user_id": user.ID.Hex(),
	})
}
