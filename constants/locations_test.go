package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, c := range ProductCategories {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.False(t, IsValidCategory("Immobilier"))
	assert.False(t, IsValidCategory(""))
}

func TestIsValidCountry(t *testing.T) {
	assert.True(t, IsValidCountry("Sénégal"))
	assert.True(t, IsValidCountry("République Démocratique du Congo"))
	assert.False(t, IsValidCountry("France"))
	assert.False(t, IsValidCountry(""))
}

func TestCitiesFor(t *testing.T) {
	cities := CitiesFor("Sénégal")
	assert.Equal(t, "Dakar", cities[0], "l'ordre des villes est fixe")
	assert.Contains(t, cities, "Thiès")

	assert.Nil(t, CitiesFor("Atlantide"))
}

func TestIsValidCity(t *testing.T) {
	assert.True(t, IsValidCity("Cameroun", "Douala"))
	assert.False(t, IsValidCity("Cameroun", "Dakar"))
	assert.False(t, IsValidCity("Atlantide", "Douala"))
}
