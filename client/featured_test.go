package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradehub/models"
)

func TestMergeFeatured(t *testing.T) {
	live := []models.Product{{Title: "live-1"}, {Title: "live-2"}}
	fallback := FallbackProducts()

	merged := MergeFeatured(live, fallback, FeaturedFeedSize)

	require.Len(t, merged, FeaturedFeedSize)
	// les lignes du serveur passent devant le repli
	assert.Equal(t, "live-1", merged[0].Title)
	assert.Equal(t, "live-2", merged[1].Title)
	assert.Equal(t, fallback[0].Title, merged[2].Title)
}

func TestMergeFeatured_FullLiveFeed(t *testing.T) {
	live := make([]models.Product, FeaturedFeedSize+2)
	for i := range live {
		live[i] = models.Product{Title: "live"}
	}

	merged := MergeFeatured(live, FallbackProducts(), FeaturedFeedSize)
	require.Len(t, merged, FeaturedFeedSize)
	for _, p := range merged {
		assert.Equal(t, "live", p.Title)
	}
}

func TestFeaturedFeed_FallsBackOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Échec de la lecture des produits"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	gw := NewGateway(server.URL, time.Second)
	feed := gw.FeaturedFeed(context.Background())

	// jamais d'état d'erreur sur l'accueil : le repli prend tout le fil
	require.Len(t, feed, FeaturedFeedSize)
	assert.Equal(t, FallbackProducts()[0].Title, feed[0].Title)
}

func TestFeaturedFeed_MergesLiveRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "64a000000000000000000009", "title": "Produit réel"},
		})
	}))
	t.Cleanup(server.Close)

	gw := NewGateway(server.URL, time.Second)
	feed := gw.FeaturedFeed(context.Background())

	require.Len(t, feed, FeaturedFeedSize)
	assert.Equal(t, "Produit réel", feed[0].Title)
	assert.Equal(t, FallbackProducts()[0].Title, feed[1].Title)
}
