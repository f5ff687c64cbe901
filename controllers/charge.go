package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"go.mongodb.org/mongo-driver/bson"

	"tradehub/models"
)

// Abonnement fournisseur : 5 USD, en centimes
const supplierSubscriptionAmount = 500

// CreateSubscriptionCharge règle l'abonnement fournisseur par carte, en
// alternative au paiement mobile money indiqué à l'inscription. Un
// paiement accepté marque le fournisseur comme vérifié.
func CreateSubscriptionCharge(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	profile, err := models.GetProfileByID(userID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Profil requis"})
		return
	}
	if profile.UserType != models.UserTypeSupplier {
		c.JSON(http.StatusForbidden, gin.H{"error": "Réservé aux comptes fournisseurs"})
		return
	}

	client, err := omise.NewClient(
		os.Getenv("OMISE_PUBLIC_KEY"),
		os.Getenv("OMISE_SECRET_KEY"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Omise client init failed"})
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"` // ex. "tokn_test_visa_4242"
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	charge := &omise.Charge{}
	op := &operations.CreateCharge{
		Amount:   supplierSubscriptionAmount,
		Currency: "usd",
		Card:     req.Token,
	}

	if err := client.Do(charge, op); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if charge.Paid {
		if _, err := models.UpdateProfileFields(userID, bson.M{"is_supplier_verified": true}); err != nil {
			log.Println("Failed to mark supplier verified:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"charge_id": charge.ID,
		"status":    charge.Status,
		"paid":      charge.Paid,
	})
}
