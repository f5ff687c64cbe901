package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tradehub/models"
	"tradehub/services" // <- la requête elle-même vit dans le service
)

// SearchProducts recherche plein texte simple sur le catalogue. La garde de
// longueur minimale (> 2 caractères) vit côté client ; ici on refuse juste
// le mot-clé vide.
func SearchProducts(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))

	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mot-clé requis"})
		return
	}

	products, err := services.SearchProductsService(keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, products)
}
