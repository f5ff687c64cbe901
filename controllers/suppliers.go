package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tradehub/models"
)

// GetSuppliers annuaire des fournisseurs. Les clients connectés passent
// ?country= depuis leur profil pour rester dans leur pays.
func GetSuppliers(c *gin.Context) {
	suppliers, err := models.GetSuppliers(c.Query("country"))
	if err != nil {
		log.Println("Error fetching suppliers:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la lecture des fournisseurs"})
		return
	}
	if suppliers == nil {
		suppliers = []models.Profile{}
	}

	c.JSON(http.StatusOK, suppliers)
}

// GetSupplierByID fiche d'un fournisseur
func GetSupplierByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fournisseur introuvable"})
		return
	}

	supplier, err := models.GetProfileByID(objID)
	if err == mongo.ErrNoDocuments || (err == nil && supplier.UserType != models.UserTypeSupplier) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fournisseur introuvable"})
		return
	} else if err != nil {
		log.Println("Error fetching supplier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la lecture du fournisseur"})
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// GetSupplierProducts produits disponibles d'un fournisseur
func GetSupplierProducts(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fournisseur introuvable"})
		return
	}

	products, err := models.GetProductsBySupplier(objID)
	if err != nil {
		log.Println("Error fetching supplier products:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la lecture des produits"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, products)
}
