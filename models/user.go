package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	db "tradehub/database"
)

// Types de compte
const (
	UserTypeSimple   = "simple"
	UserTypeSupplier = "supplier"
)

// AuthUser identité d'authentification (email + mot de passe haché).
// Le profil métier est une ligne séparée, créée dans un second temps.
type AuthUser struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// Profile fiche utilisateur. _id reprend l'identifiant de l'identité :
// exactement un profil par compte, jamais dupliqué.
type Profile struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id"`
	UserType           string             `json:"user_type" bson:"user_type"`
	FullName           string             `json:"full_name" bson:"full_name"`
	AvatarURL          string             `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Bio                string             `json:"bio,omitempty" bson:"bio,omitempty"`
	Phone              string             `json:"phone" bson:"phone"`
	Country            string             `json:"country" bson:"country"`
	City               string             `json:"city" bson:"city"`
	Address            string             `json:"address" bson:"address"`
	IsSupplierVerified bool               `json:"is_supplier_verified" bson:"is_supplier_verified"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// InsertAuthUser enregistre une nouvelle identité
func InsertAuthUser(user AuthUser) (AuthUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	_, err := db.AuthUserCollection.InsertOne(ctx, user)
	if err != nil {
		return AuthUser{}, err
	}
	return user, nil
}

func FindAuthUserByEmail(email string) (AuthUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user AuthUser
	err := db.AuthUserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func FindAuthUserByID(id primitive.ObjectID) (AuthUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user AuthUser
	err := db.AuthUserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	return user, err
}

// InsertProfile crée la fiche associée à une identité. Le _id partagé avec
// l'identité garantit l'unicité : une seconde insertion échoue sur clé dupliquée.
func InsertProfile(profile Profile) (Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	_, err := db.ProfileCollection.InsertOne(ctx, profile)
	if err != nil {
		return Profile{}, err
	}
	return profile, nil
}

func GetProfileByID(id primitive.ObjectID) (Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var profile Profile
	err := db.ProfileCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	return profile, err
}

// UpdateProfileFields applique un patch partiel puis relit la ligne complète,
// pour que l'appelant voie les champs calculés côté serveur (updated_at).
func UpdateProfileFields(id primitive.ObjectID, patch bson.M) (Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	patch["updated_at"] = time.Now().UTC()
	_, err := db.ProfileCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		return Profile{}, err
	}

	var profile Profile
	err = db.ProfileCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	return profile, err
}

// GetSuppliers liste les fournisseurs, du plus récent au plus ancien.
// country vide = pas de restriction (visiteur anonyme).
func GetSuppliers(country string) ([]Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"user_type": UserTypeSupplier}
	if country != "" {
		filter["country"] = country
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.ProfileCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var suppliers []Profile
	if err = cursor.All(ctx, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}
