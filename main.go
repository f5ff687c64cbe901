package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tradehub/cache"
	db "tradehub/database"
	"tradehub/gcs"
	"tradehub/jobs"
	"tradehub/routes"
)

func main() {
	// charger le fichier .env
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning Error loading .env file:", err)
	}

	// le stockage d'images est optionnel en local
	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" {
		gcs.InitGCS()
		defer gcs.Close()
	} else {
		log.Println("GOOGLE_APPLICATION_CREDENTIALS not set, image upload disabled")
	}

	// connexion MongoDB
	db.InitDB()
	defer db.DisconnectDB()

	// cache Redis du fil d'accueil
	cache.InitRedis()
	defer cache.Close()

	// rafraîchissement périodique du fil d'accueil
	scheduler := jobs.StartScheduler()
	defer scheduler.Stop()

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Starting server on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
