package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Schéma de référence pour la messagerie. Les collections existent mais
// aucune route ne les lit ni ne les écrit : la fonctionnalité n'est pas
// encore construite, les écrans affichent des données d'exemple.

type Conversation struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	BuyerID       primitive.ObjectID  `json:"buyer_id" bson:"buyer_id"`
	SupplierID    primitive.ObjectID  `json:"supplier_id" bson:"supplier_id"`
	ProductID     *primitive.ObjectID `json:"product_id,omitempty" bson:"product_id,omitempty"`
	LastMessage   string              `json:"last_message,omitempty" bson:"last_message,omitempty"`
	LastMessageAt *time.Time          `json:"last_message_at,omitempty" bson:"last_message_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at" bson:"created_at"`
}

type Message struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ConversationID primitive.ObjectID `json:"conversation_id" bson:"conversation_id"`
	SenderID       primitive.ObjectID `json:"sender_id" bson:"sender_id"`
	Content        string             `json:"content" bson:"content"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}
