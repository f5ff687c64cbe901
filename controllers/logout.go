package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Logout(c *gin.Context) {
	// effacer le cookie "token"
	c.SetCookie(
		"token", // nom du cookie
		"",      // valeur vide
		-1,      // expire immédiatement
		"/",     // path
		"",      // domaine
		false,   // secure (false en local)
		true,    // httpOnly
	)

	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}
