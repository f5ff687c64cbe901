package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	db "tradehub/database"
)

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SupplierID  primitive.ObjectID `json:"supplier_id" bson:"supplier_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Currency    string             `json:"currency" bson:"currency"`
	Category    string             `json:"category" bson:"category"`
	Images      []string           `json:"images" bson:"images"`
	Country     string             `json:"country" bson:"country"`
	City        string             `json:"city" bson:"city"`
	IsAvailable bool               `json:"is_available" bson:"is_available"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// AddProduct insère un produit
func AddProduct(product Product) (Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	product.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	product.IsAvailable = true
	if product.Images == nil {
		product.Images = []string{}
	}
	_, err := db.ProductCollection.InsertOne(ctx, product)
	if err != nil {
		return Product{}, err
	}
	return product, nil
}

// GetProducts liste les produits disponibles, filtres d'égalité optionnels
// sur la catégorie et le pays, du plus récent au plus ancien.
func GetProducts(category, country string) ([]Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"is_available": true}
	if category != "" {
		filter["category"] = category
	}
	if country != "" {
		filter["country"] = country
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.ProductCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetFeaturedProducts retourne les derniers produits disponibles pour la
// page d'accueil
func GetFeaturedProducts(limit int64) ([]Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := db.ProductCollection.Find(ctx, bson.M{"is_available": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func GetProductByID(id string) (Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Product{}, err
	}

	var product Product
	err = db.ProductCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		return Product{}, err
	}
	return product, nil
}

// GetProductsBySupplier liste les produits disponibles d'un fournisseur
func GetProductsBySupplier(supplierID primitive.ObjectID) ([]Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.ProductCollection.Find(ctx, bson.M{
		"supplier_id":  supplierID,
		"is_available": true,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProductFields applique un patch partiel et retourne la ligne relue
func UpdateProductFields(id primitive.ObjectID, patch bson.M) (Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	patch["updated_at"] = time.Now().UTC()
	_, err := db.ProductCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		return Product{}, err
	}

	var product Product
	err = db.ProductCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	return product, err
}

// RetireProduct retrait logique : le produit passe indisponible, pas de
// suppression physique
func RetireProduct(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.ProductCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"is_available": false,
			"updated_at":   time.Now().UTC(),
		},
	})
	return err
}
