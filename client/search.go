package client

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"tradehub/models"
)

// Contrôleur de l'écran de recherche : anti-rebond des frappes, garde de
// longueur minimale, et rejet des réponses périmées quand plusieurs
// requêtes se chevauchent.

// SearchState états de l'écran de recherche
type SearchState int

const (
	// SearchIdle requête vide, aucun résultat
	SearchIdle SearchState = iota
	// SearchTyping 1 ou 2 caractères : volontairement aucune requête
	SearchTyping
	// SearchDebouncing plus de 2 caractères, minuterie armée
	SearchDebouncing
	// SearchSearching requête distante en vol
	SearchSearching
	// SearchResults réponse arrivée, liste peuplée (éventuellement vide)
	SearchResults
)

// DefaultDebounceDelay délai d'anti-rebond entre la dernière frappe et la
// requête distante
const DefaultDebounceDelay = 500 * time.Millisecond

// MinQueryLength en dessous ou égal, la requête ne part jamais au serveur
const MinQueryLength = 2

// Searcher exécute la requête distante ; *Gateway l'implémente
type Searcher interface {
	Search(ctx context.Context, keyword string) ([]models.Product, error)
}

// SearchSnapshot vue de l'état courant, livrée à chaque transition
type SearchSnapshot struct {
	State       SearchState
	Query       string
	Results     []models.Product
	Loading     bool
	HasSearched bool
}

// SearchController sérialise l'état sous un verrou ; une seule minuterie en
// attente, remplacée (jamais doublée) à chaque frappe. Chaque requête émise
// porte un numéro de séquence croissant et une réponse n'est retenue que si
// aucune requête plus récente n'a déjà répondu.
type SearchController struct {
	searcher Searcher
	onUpdate func(SearchSnapshot)

	delay   time.Duration
	timeout time.Duration

	mu          sync.Mutex
	timer       *time.Timer
	timerGen    uint64 // invalide les minuteries remplacées
	seq         uint64 // dernier numéro de requête émis
	applied     uint64 // dernier numéro dont la réponse a été retenue
	state       SearchState
	query       string
	results     []models.Product
	loading     bool
	hasSearched bool
}

// NewSearchController construit le contrôleur. onUpdate est appelé à chaque
// transition d'état, hors verrou ; nil accepté.
func NewSearchController(searcher Searcher, onUpdate func(SearchSnapshot)) *SearchController {
	return &SearchController{
		searcher: searcher,
		onUpdate: onUpdate,
		delay:    DefaultDebounceDelay,
		timeout:  10 * time.Second,
	}
}

// SetDebounce change le délai d'anti-rebond (les tests le raccourcissent)
func (c *SearchController) SetDebounce(d time.Duration) {
	c.mu.Lock()
	c.delay = d
	c.mu.Unlock()
}

// Snapshot état courant
func (c *SearchController) Snapshot() SearchSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *SearchController) snapshotLocked() SearchSnapshot {
	results := make([]models.Product, len(c.results))
	copy(results, c.results)
	return SearchSnapshot{
		State:       c.state,
		Query:       c.query,
		Results:     results,
		Loading:     c.loading,
		HasSearched: c.hasSearched,
	}
}

func (c *SearchController) notify(snap SearchSnapshot) {
	if c.onUpdate != nil {
		c.onUpdate(snap)
	}
}

// stopTimerLocked remplace intégralement la minuterie en attente : une
// minuterie supplantée ne doit jamais soumettre sa requête périmée
func (c *SearchController) stopTimerLocked() {
	c.timerGen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// SetQuery enregistre une frappe. Chaque appel remplace la minuterie en
// attente ; seule la valeur présente quand la minuterie expire est soumise.
func (c *SearchController) SetQuery(query string) {
	c.mu.Lock()
	c.query = query
	c.stopTimerLocked()

	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) <= MinQueryLength {
		// jamais de requête distante : liste vidée, hasSearched retombe,
		// et toute réponse encore en vol devient périmée
		c.applied = c.seq
		c.results = nil
		c.hasSearched = false
		c.loading = false
		if trimmed == "" {
			c.state = SearchIdle
		} else {
			c.state = SearchTyping
		}
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
		return
	}

	c.state = SearchDebouncing
	gen := c.timerGen
	c.timer = time.AfterFunc(c.delay, func() {
		c.fire(gen, trimmed)
	})
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// fire la minuterie a expiré ; n'agit que si elle n'a pas été remplacée
// entre-temps
func (c *SearchController) fire(gen uint64, keyword string) {
	c.mu.Lock()
	if gen != c.timerGen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	snap := c.launchLocked(keyword)
	c.mu.Unlock()
	c.notify(snap)
}

// Submit action "rechercher" explicite : contourne la minuterie et part
// immédiatement avec la saisie courante, épurée
func (c *SearchController) Submit() {
	c.mu.Lock()
	c.stopTimerLocked()
	trimmed := strings.TrimSpace(c.query)
	if trimmed == "" {
		c.mu.Unlock()
		return
	}
	snap := c.launchLocked(trimmed)
	c.mu.Unlock()
	c.notify(snap)
}

// Clear remet l'écran à zéro : saisie vide, liste vide, pas de requête en
// attente
func (c *SearchController) Clear() {
	c.mu.Lock()
	c.stopTimerLocked()
	c.applied = c.seq
	c.query = ""
	c.results = nil
	c.hasSearched = false
	c.loading = false
	c.state = SearchIdle
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// launchLocked émet la requête numérotée ; appelé verrou tenu
func (c *SearchController) launchLocked(keyword string) SearchSnapshot {
	c.seq++
	id := c.seq
	c.state = SearchSearching
	c.loading = true
	c.hasSearched = true
	go c.run(id, keyword)
	return c.snapshotLocked()
}

func (c *SearchController) run(id uint64, keyword string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	results, err := c.searcher.Search(ctx, keyword)

	c.mu.Lock()
	// dernier écrit gagne : une réponse est ignorée si une requête plus
	// récente a déjà livré la sienne
	if id <= c.applied {
		c.mu.Unlock()
		return
	}
	c.applied = id
	c.loading = false
	c.state = SearchResults
	if err != nil {
		log.Println("Search failed:", err)
		c.results = nil
	} else {
		c.results = results
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}
