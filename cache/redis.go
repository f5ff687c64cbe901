package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"tradehub/models"
)

// Client global Redis, utilisé pour le cache de la page d'accueil.
// Redis est optionnel : sans REDIS_ADDR le cache est simplement désactivé.
var Client *redis.Client

const FeaturedKey = "tradehub:featured"

// InitRedis connecte le client Redis si REDIS_ADDR est défini
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, featured cache disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Ping(ctx).Err(); err != nil {
		log.Println("Redis unreachable, featured cache disabled:", err)
		Client = nil
		return
	}
	log.Println("Connected to Redis!")
}

// GetFeatured lit la liste en vedette depuis le cache, (nil, false) si absent
func GetFeatured(ctx context.Context) ([]models.Product, bool) {
	if Client == nil {
		return nil, false
	}
	raw, err := Client.Get(ctx, FeaturedKey).Bytes()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetFeatured écrit la liste en vedette avec une durée de vie
func SetFeatured(ctx context.Context, products []models.Product, ttl time.Duration) {
	if Client == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := Client.Set(ctx, FeaturedKey, raw, ttl).Err(); err != nil {
		log.Println("Failed to cache featured products:", err)
	}
}

// Close ferme la connexion Redis
func Close() {
	if Client != nil {
		Client.Close()
	}
}
