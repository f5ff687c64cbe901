package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tradehub/cache"
	"tradehub/constants"
	"tradehub/models"
)

const featuredLimit = 6
const featuredCacheTTL = 15 * time.Minute

// GetAllProducts catalogue des produits disponibles. Filtres d'égalité
// optionnels : category, et country (envoyé par les clients connectés à
// partir du pays de leur profil ; les visiteurs anonymes n'en envoient pas).
func GetAllProducts(c *gin.Context) {
	category := c.Query("category")
	country := c.Query("country")

	if category != "" && !constants.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue"})
		return
	}

	products, err := models.GetProducts(category, country)
	if err != nil {
		log.Println("Error fetching products:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la lecture des produits"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, products)
}

// GetFeaturedProducts fil d'accueil : les derniers produits, servis depuis
// le cache Redis quand il est chaud
func GetFeaturedProducts(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "6"), 10, 64)
	if err != nil || limit <= 0 || limit > 20 {
		limit = featuredLimit
	}

	ctx := c.Request.Context()
	if cached, ok := cache.GetFeatured(ctx); ok {
		if int64(len(cached)) > limit {
			cached = cached[:limit]
		}
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := models.GetFeaturedProducts(limit)
	if err != nil {
		log.Println("Error fetching featured products:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la lecture des produits"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	cache.SetFeatured(ctx, products, featuredCacheTTL)
	c.JSON(http.StatusOK, products)
}

// RefreshFeaturedCache recharge le cache du fil d'accueil, appelé par le
// planificateur
func RefreshFeaturedCache() {
	products, err := models.GetFeaturedProducts(featuredLimit)
	if err != nil {
		log.Println("Featured cache refresh failed:", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cache.SetFeatured(ctx, products, featuredCacheTTL)
}

// GetProductByID fiche produit avec le résumé du fournisseur
func GetProductByID(c *gin.Context) {
	product, err := models.GetProductByID(c.Param("id"))
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	} else if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	// joindre le profil du fournisseur ; son absence n'empêche pas
	// d'afficher le produit
	response := gin.H{"product": product}
	supplier, err := models.GetProfileByID(product.SupplierID)
	if err == nil {
		response["supplier"] = gin.H{
			"id":         supplier.ID.Hex(),
			"full_name":  supplier.FullName,
			"avatar_url": supplier.AvatarURL,
			"city":       supplier.City,
			"country":    supplier.Country,
		}
	} else if err != mongo.ErrNoDocuments {
		log.Println("Error fetching supplier for product:", err)
	}

	c.JSON(http.StatusOK, response)
}

// AddProduct publication d'un produit, réservé aux fournisseurs
func AddProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	profile, err := models.GetProfileByID(userID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Profil requis pour publier"})
		return
	}
	if profile.UserType != models.UserTypeSupplier {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seuls les fournisseurs peuvent publier des produits"})
		return
	}

	type ProductInput struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description" binding:"required"`
		Price       float64  `json:"price" binding:"min=0"`
		Currency    string   `json:"currency"`
		Category    string   `json:"category" binding:"required"`
		Images      []string `json:"images"`
		Country     string   `json:"country"`
		City        string   `json:"city"`
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez remplir tous les champs", "details": err.Error()})
		return
	}

	if !constants.IsValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue"})
		return
	}

	if input.Currency == "" {
		input.Currency = "USD"
	}
	// par défaut le produit est localisé chez son fournisseur
	if input.Country == "" {
		input.Country = profile.Country
	}
	if input.City == "" {
		input.City = profile.City
	}

	product, err := models.AddProduct(models.Product{
		SupplierID:  userID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Currency:    input.Currency,
		Category:    input.Category,
		Images:      input.Images,
		Country:     input.Country,
		City:        input.City,
	})
	if err != nil {
		log.Println("Error adding product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la publication du produit"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct mise à jour partielle, réservée au propriétaire
func UpdateProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	product, err := models.GetProductByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if product.SupplierID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Ce produit ne vous appartient pas"})
		return
	}

	type UpdateInput struct {
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		Price       *float64  `json:"price"`
		Currency    *string   `json:"currency"`
		Category    *string   `json:"category"`
		Images      *[]string `json:"images"`
		City        *string   `json:"city"`
		IsAvailable *bool     `json:"is_available"`
	}

	var input UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	patch := bson.M{}
	if input.Title != nil {
		patch["title"] = *input.Title
	}
	if input.Description != nil {
		patch["description"] = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le prix doit être positif"})
			return
		}
		patch["price"] = *input.Price
	}
	if input.Currency != nil {
		patch["currency"] = *input.Currency
	}
	if input.Category != nil {
		if !constants.IsValidCategory(*input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue"})
			return
		}
		patch["category"] = *input.Category
	}
	if input.Images != nil {
		patch["images"] = *input.Images
	}
	if input.City != nil {
		patch["city"] = *input.City
	}
	if input.IsAvailable != nil {
		patch["is_available"] = *input.IsAvailable
	}

	if len(patch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun champ à mettre à jour"})
		return
	}

	updated, err := models.UpdateProductFields(product.ID, patch)
	if err != nil {
		log.Println("Error updating product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la mise à jour du produit"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProduct retrait logique : le produit devient indisponible mais la
// ligne reste
func DeleteProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	product, err := models.GetProductByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if product.SupplierID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Ce produit ne vous appartient pas"})
		return
	}

	if err := models.RetireProduct(product.ID); err != nil {
		log.Println("Error retiring product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec du retrait du produit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit retiré du catalogue"})
}
