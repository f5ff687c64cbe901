package services

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	db "tradehub/database"
	"tradehub/models"
)

// Plafond de lignes retournées par une recherche
const SearchResultLimit = 20

// SearchProductsService correspondance de sous-chaîne insensible à la casse
// sur le titre OU la description, produits disponibles uniquement. Le
// mot-clé est échappé : "C++" cherche littéralement "C++", pas une regex.
func SearchProductsService(keyword string) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pattern := regexp.QuoteMeta(keyword)
	filter := bson.M{
		"is_available": true,
		"$or": []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
		},
	}

	opts := options.Find().SetLimit(SearchResultLimit)
	cursor, err := db.ProductCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}
