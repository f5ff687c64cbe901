package client

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tradehub/models"
)

// FeaturedFeedSize taille du fil d'accueil
const FeaturedFeedSize = 6

func mustObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

// FallbackProducts produits de démonstration affichés quand le serveur ne
// répond pas ou renvoie moins de produits que la taille du fil. Comportement
// hérité de l'application d'origine, isolé ici pour pouvoir le retirer.
func FallbackProducts() []models.Product {
	now := time.Now().UTC()
	return []models.Product{
		{
			ID:          mustObjectID("000000000000000000000001"),
			SupplierID:  mustObjectID("0000000000000000000000a1"),
			Title:       "iPhone 14 Pro Max 256GB",
			Description: "Smartphone Apple dernière génération, état neuf avec garantie",
			Price:       1200,
			Currency:    "USD",
			Category:    "Électronique",
			Images:      []string{"https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Country:     "République Démocratique du Congo",
			City:        "Kinshasa",
			IsAvailable: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          mustObjectID("000000000000000000000002"),
			SupplierID:  mustObjectID("0000000000000000000000a2"),
			Title:       "Robe Africaine Traditionnelle",
			Description: "Belle robe en wax authentique, taille M, parfaite pour les occasions spéciales",
			Price:       85,
			Currency:    "USD",
			Category:    "Mode & Vêtements",
			Images:      []string{"https://images.pexels.com/photos/1536619/pexels-photo-1536619.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Country:     "Côte d'Ivoire",
			City:        "Abidjan",
			IsAvailable: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          mustObjectID("000000000000000000000003"),
			SupplierID:  mustObjectID("0000000000000000000000a3"),
			Title:       "Ordinateur Portable Dell XPS",
			Description: "Laptop professionnel, Intel i7, 16GB RAM, 512GB SSD, parfait pour le travail",
			Price:       950,
			Currency:    "USD",
			Category:    "Électronique",
			Images:      []string{"https://images.pexels.com/photos/205421/pexels-photo-205421.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Country:     "Sénégal",
			City:        "Dakar",
			IsAvailable: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          mustObjectID("000000000000000000000004"),
			SupplierID:  mustObjectID("0000000000000000000000a4"),
			Title:       "Sac à Main en Cuir",
			Description: "Sac artisanal en cuir véritable, fait main par des artisans locaux",
			Price:       120,
			Currency:    "USD",
			Category:    "Mode & Vêtements",
			Images:      []string{"https://images.pexels.com/photos/1152077/pexels-photo-1152077.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Country:     "Maroc",
			City:        "Casablanca",
			IsAvailable: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          mustObjectID("000000000000000000000005"),
			SupplierID:  mustObjectID("0000000000000000000000a5"),
			Title:       "Café Arabica Premium",
			Description: "Café de haute qualité, torréfaction artisanale, 1kg",
			Price:       45,
			Currency:    "USD",
			Category:    "Alimentation",
			Images:      []string{"https://images.pexels.com/photos/894695/pexels-photo-894695.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Country:     "Rwanda",
			City:        "Kigali",
			IsAvailable: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          mustObjectID("000000000000000000000006"),
			SupplierID:  mustObjectID("0000000000000000000000a6"),
			Title:       "Sculpture en Bois d'Ébène",
			Description: "Œuvre d'art traditionnelle sculptée à la main, pièce unique",
			Price:       200,
			Currency:    "USD",
			Category:    "Artisanat Local",
			Images:      []string{"https://images.pexels.com/photos/1193743/pexels-photo-1193743.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Country:     "Cameroun",
			City:        "Douala",
			IsAvailable: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// MergeFeatured concatène les lignes du serveur puis le repli, tronqué à la
// taille du fil : les vrais produits passent toujours devant
func MergeFeatured(live, fallback []models.Product, size int) []models.Product {
	merged := make([]models.Product, 0, len(live)+len(fallback))
	merged = append(merged, live...)
	merged = append(merged, fallback...)
	if len(merged) > size {
		merged = merged[:size]
	}
	return merged
}

// FeaturedFeed charge le fil d'accueil. Une erreur serveur bascule
// entièrement sur le repli : l'accueil ne montre jamais un état d'erreur.
func (g *Gateway) FeaturedFeed(ctx context.Context) []models.Product {
	live, err := g.Featured(ctx, FeaturedFeedSize)
	if err != nil {
		log.Println("Error fetching featured products:", err)
		return FallbackProducts()
	}
	return MergeFeatured(live, FallbackProducts(), FeaturedFeedSize)
}
