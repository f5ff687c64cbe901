package controllers

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tradehub/gcs"
)

// UploadImageToGCS envoie une image (produit, avatar) vers le bucket public
func UploadImageToGCS(reader io.Reader, contentType, folder string) (string, error) {
	ctx := context.Background()

	extension := "jpg"
	switch strings.ToLower(contentType) {
	case "image/png":
		extension = "png"
	case "image/jpeg", "image/jpg":
		extension = "jpeg"
	case "image/gif":
		extension = "gif"
	default:
		log.Printf("Unsupported content type: %s, defaulting to .jpg", contentType)
	}

	// UUID + horodatage nano pour un nom d'objet unique
	objectName := fmt.Sprintf("%s/%s_%d.%s", folder, uuid.NewString(), time.Now().UnixNano(), extension)

	writer := gcs.Client.Bucket(gcs.Bucket).Object(objectName).NewWriter(ctx)
	if contentType == "" {
		contentType = "image/jpeg"
	}
	writer.ContentType = contentType

	if _, err := io.Copy(writer, reader); err != nil {
		log.Printf("Failed to copy file to GCS: %v", err)
		return "", fmt.Errorf("impossible de copier le fichier vers GCS: %v", err)
	}

	if err := writer.Close(); err != nil {
		log.Printf("Failed to close writer: %v", err)
		return "", fmt.Errorf("impossible de fermer le writer: %v", err)
	}

	publicURL := fmt.Sprintf("https://storage.googleapis.com/%s/%s", gcs.Bucket, objectName)
	return publicURL, nil
}

// UploadImage handler multipart : champ "image", dossier "products" ou "avatars"
func UploadImage(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	if gcs.Client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Stockage d'images indisponible"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image requise"})
		return
	}

	folder := c.DefaultQuery("folder", "products")
	if folder != "products" && folder != "avatars" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dossier inconnu"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la lecture du fichier"})
		return
	}
	defer file.Close()

	url, err := UploadImageToGCS(file, fileHeader.Header.Get("Content-Type"), folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'envoi de l'image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
