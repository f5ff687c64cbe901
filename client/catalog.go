package client

import (
	"strings"

	"tradehub/models"
)

// Filtrage local du catalogue : les écrans affinent en mémoire une liste
// déjà chargée, sans repasser par le serveur.

// FilterCriteria critères actifs, combinés en ET logique. Un champ vide
// signifie "pas de filtre".
type FilterCriteria struct {
	Category string // égalité stricte sur la catégorie
	Country  string // égalité stricte, normalement le pays du profil connecté
	Query    string // sous-chaîne insensible à la casse sur titre OU description
}

// Active vrai si au moins un critère est posé
func (c FilterCriteria) Active() bool {
	return c.Category != "" || c.Country != "" || strings.TrimSpace(c.Query) != ""
}

// MatchesText correspondance de sous-chaîne insensible à la casse sur le
// titre ou la description ; une requête vide correspond à tout
func MatchesText(product models.Product, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(product.Title), query) ||
		strings.Contains(strings.ToLower(product.Description), query)
}

// FilterProducts applique les critères en conservant l'ordre relatif
// d'entrée : aucun reclassement par pertinence
func FilterProducts(products []models.Product, criteria FilterCriteria) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if criteria.Category != "" && p.Category != criteria.Category {
			continue
		}
		if criteria.Country != "" && p.Country != criteria.Country {
			continue
		}
		if !MatchesText(p, criteria.Query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// EmptyKind distingue les deux états vides pour le bon message d'écran
type EmptyKind int

const (
	// NotEmpty la liste filtrée contient des produits
	NotEmpty EmptyKind = iota
	// StoreEmpty aucun filtre actif et rien dans le magasin
	StoreEmpty
	// NoMatch des filtres actifs n'ont retenu aucune ligne
	NoMatch
)

// ClassifyEmpty qualifie une liste filtrée vide : "aucun produit" quand le
// magasin est vide sans filtre, "aucun résultat pour ces critères" quand un
// filtre a tout éliminé
func ClassifyEmpty(total, filtered int, criteria FilterCriteria) EmptyKind {
	if filtered > 0 {
		return NotEmpty
	}
	if criteria.Active() {
		return NoMatch
	}
	if total == 0 {
		return StoreEmpty
	}
	// liste vide sans filtre actif sur un magasin non vide : impossible
	// par construction, traité comme magasin vide
	return StoreEmpty
}
