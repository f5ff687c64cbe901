package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehub/constants"
)

// Les catégories et localisations sont des données de référence embarquées,
// pas des lignes du magasin : on les sert telles quelles.

func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, constants.ProductCategories)
}

func GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, constants.AfricanLocations)
}
