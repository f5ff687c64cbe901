package gcs

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var Client *storage.Client

// Bucket public des images (produits et avatars)
var Bucket = "tradehub-images"

// InitGCS connecte Google Cloud Storage et vérifie l'accès au bucket
func InitGCS() {
	ctx := context.Background()

	if b := os.Getenv("GCS_BUCKET"); b != "" {
		Bucket = b
	}

	var err error
	creds := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if creds != "" {
		Client, err = storage.NewClient(ctx, option.WithCredentialsFile(creds))
	} else {
		Client, err = storage.NewClient(ctx)
	}
	if err != nil {
		log.Fatalf("Impossible de se connecter à Google Cloud Storage: %v", err)
	}

	_, err = Client.Bucket(Bucket).Attrs(ctx)
	if err != nil {
		log.Fatalf("Impossible d'accéder au bucket %s: %v", Bucket, err)
	}
	log.Printf("Bucket %s prêt", Bucket)
}

func Close() {
	if Client != nil {
		Client.Close()
	}
}
