package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client variable globale pour la connexion MongoDB
var Client *mongo.Client

// Collections du magasin de lignes. conversations/messages existent dans le
// schéma mais aucun flux serveur ne les touche encore.
var AuthUserCollection *mongo.Collection
var ProfileCollection *mongo.Collection
var ProductCollection *mongo.Collection
var ConversationCollection *mongo.Collection
var MessageCollection *mongo.Collection

const databaseName = "tradehub_db"

// InitDB établit la connexion MongoDB
func InitDB() {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI not set in .env")
	}

	clientOptions := options.Client().ApplyURI(mongoURI)

	// contexte avec timeout pour la connexion
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	// vérifier la connexion avec un ping
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	Client = client
	AuthUserCollection = client.Database(databaseName).Collection("auth_users")
	ProfileCollection = client.Database(databaseName).Collection("profiles")
	ProductCollection = client.Database(databaseName).Collection("products")
	ConversationCollection = client.Database(databaseName).Collection("conversations")
	MessageCollection = client.Database(databaseName).Collection("messages")

	log.Println("Connected to MongoDB!")
}

// DisconnectDB ferme la connexion MongoDB
func DisconnectDB() {
	if Client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Client.Disconnect(ctx)
	if err != nil {
		log.Println("Failed to disconnect MongoDB:", err)
		return
	}
	log.Println("Disconnected from MongoDB")
}

// OpenCollection retourne une collection par son nom
func OpenCollection(collectionName string) *mongo.Collection {
	return Client.Database(databaseName).Collection(collectionName)
}
