package routes

import (
	"github.com/gin-gonic/gin"

	"tradehub/controllers"
	middlewares "tradehub/middleware"
)

func SetupAuthRoutes(r *gin.Engine) {
	// Routes publiques d'authentification
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)
	r.POST("/logout", controllers.Logout)

	// Session et profil du compte connecté
	authed := r.Group("/", middlewares.AuthMiddleware())
	authed.GET("/me", controllers.GetMe)
	authed.POST("/profiles", controllers.CreateProfile)
	authed.PATCH("/profiles/me", controllers.UpdateMyProfile)
}

func SetupCatalogRoutes(r *gin.Engine) {
	// Catalogue consultable sans compte
	r.GET("/products", controllers.GetAllProducts)
	r.GET("/products/featured", controllers.GetFeaturedProducts)
	r.GET("/products/search", controllers.SearchProducts)
	r.GET("/products/:id", controllers.GetProductByID)

	// Annuaire des fournisseurs
	r.GET("/suppliers", controllers.GetSuppliers)
	r.GET("/suppliers/:id", controllers.GetSupplierByID)
	r.GET("/suppliers/:id/products", controllers.GetSupplierProducts)

	// Données de référence
	r.GET("/reference/categories", controllers.GetCategories)
	r.GET("/reference/locations", controllers.GetLocations)

	// Opérations réservées aux comptes connectés
	authed := r.Group("/", middlewares.AuthMiddleware())
	authed.POST("/products", controllers.AddProduct)
	authed.PUT("/products/:id", controllers.UpdateProduct)
	authed.DELETE("/products/:id", controllers.DeleteProduct)
	authed.POST("/upload", controllers.UploadImage)
	authed.POST("/suppliers/subscription/charge", controllers.CreateSubscriptionCharge)
}
