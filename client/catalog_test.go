package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tradehub/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{Title: "iPhone 14 Pro Max", Description: "Smartphone Apple dernière génération", Category: "Électronique", Country: "Sénégal"},
		{Title: "Robe Africaine", Description: "Belle robe en wax authentique", Category: "Mode & Vêtements", Country: "Côte d'Ivoire"},
		{Title: "Ordinateur Dell XPS", Description: "Laptop professionnel Intel i7", Category: "Électronique", Country: "Sénégal"},
		{Title: "Café Arabica", Description: "Torréfaction artisanale", Category: "Alimentation", Country: "Rwanda"},
	}
}

func TestFilterProducts_Category(t *testing.T) {
	products := sampleProducts()
	filtered := FilterProducts(products, FilterCriteria{Category: "Électronique"})

	assert.Len(t, filtered, 2)
	for _, p := range filtered {
		assert.Equal(t, "Électronique", p.Category)
	}
	// l'ordre relatif d'entrée est conservé
	assert.Equal(t, "iPhone 14 Pro Max", filtered[0].Title)
	assert.Equal(t, "Ordinateur Dell XPS", filtered[1].Title)
}

func TestFilterProducts_TextCaseInsensitive(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"titre en minuscules", "iphone", []string{"iPhone 14 Pro Max"}},
		{"description", "LAPTOP", []string{"Ordinateur Dell XPS"}},
		{"titre ou description", "robe", []string{"Robe Africaine"}},
		{"espaces épurés", "  café  ", []string{"Café Arabica"}},
		{"aucune correspondance", "télévision", []string{}},
		{"requête vide ne filtre pas", "", []string{"iPhone 14 Pro Max", "Robe Africaine", "Ordinateur Dell XPS", "Café Arabica"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterProducts(products, FilterCriteria{Query: tt.query})
			titles := make([]string, 0, len(filtered))
			for _, p := range filtered {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFilterProducts_CombinedCriteria(t *testing.T) {
	products := sampleProducts()

	// les critères se combinent en ET logique
	filtered := FilterProducts(products, FilterCriteria{
		Category: "Électronique",
		Country:  "Sénégal",
		Query:    "dell",
	})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "Ordinateur Dell XPS", filtered[0].Title)
}

func TestFilterProducts_CountryOnly(t *testing.T) {
	filtered := FilterProducts(sampleProducts(), FilterCriteria{Country: "Sénégal"})
	assert.Len(t, filtered, 2)

	// pays vide = visiteur anonyme, pas de restriction
	all := FilterProducts(sampleProducts(), FilterCriteria{})
	assert.Len(t, all, 4)
}

func TestClassifyEmpty(t *testing.T) {
	active := FilterCriteria{Category: "Électronique"}
	none := FilterCriteria{}

	assert.Equal(t, NotEmpty, ClassifyEmpty(4, 2, active))
	assert.Equal(t, NoMatch, ClassifyEmpty(4, 0, active))
	assert.Equal(t, StoreEmpty, ClassifyEmpty(0, 0, none))
}
