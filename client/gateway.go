// Package client est le SDK Go de TradeHub : passerelle HTTP typée vers
// l'API, magasin de session/profil et contrôleur de recherche. Il porte la
// logique qui vit côté application : filtrage local du catalogue, anti-
// rebond de la recherche, repli du fil d'accueil.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"tradehub/models"
)

var (
	// ErrNotFound ligne absente du magasin : état "introuvable" à afficher,
	// pas une panique
	ErrNotFound = errors.New("tradehub: not found")
	// ErrIdentityNotReady l'identité n'est pas encore visible pour
	// l'insertion du profil ; l'appelant réessaie
	ErrIdentityNotReady = errors.New("tradehub: identity not ready")
)

// APIError erreur renvoyée par le serveur avec son message utilisateur
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tradehub: api error %d: %s", e.Status, e.Message)
}

// Gateway client HTTP typé de l'API TradeHub. Simple passe-plat : pas de
// retry ni de pool au-delà de net/http.
type Gateway struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewGateway construit la passerelle vers baseURL. timeout <= 0 prend 10 s.
func NewGateway(baseURL string, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken pose le jeton de session envoyé en Bearer, vide pour l'effacer
func (g *Gateway) SetToken(token string) {
	g.mu.Lock()
	g.token = token
	g.mu.Unlock()
}

func (g *Gateway) currentToken() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// do envoie la requête et décode la réponse JSON dans out (nil accepté)
func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := g.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		var envelope struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		_ = json.Unmarshal(raw, &envelope)
		if envelope.Code == "identity_not_ready" {
			return ErrIdentityNotReady
		}
		if envelope.Error == "" {
			envelope.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// Register crée l'identité d'authentification, retourne son identifiant
func (g *Gateway) Register(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		UserID string `json:"user_id"`
	}
	err := g.do(ctx, http.MethodPost, "/register", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.UserID, nil
}

// Login retourne le jeton de session et le pose sur la passerelle
func (g *Gateway) Login(ctx context.Context, email, password string) (token, userID string, err error) {
	var resp struct {
		Token  string `json:"token"`
		UserID string `json:"user_id"`
	}
	err = g.do(ctx, http.MethodPost, "/login", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", "", err
	}
	g.SetToken(resp.Token)
	return resp.Token, resp.UserID, nil
}

// ProfileInput champs de la fiche profil à l'inscription
type ProfileInput struct {
	UserType string `json:"user_type"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Bio      string `json:"bio,omitempty"`
}

// CreateProfile insère la fiche profil ; message est le texte de
// confirmation d'inscription (variante fournisseur avec instructions de
// paiement)
func (g *Gateway) CreateProfile(ctx context.Context, input ProfileInput) (models.Profile, string, error) {
	var resp struct {
		Message string         `json:"message"`
		Profile models.Profile `json:"profile"`
	}
	err := g.do(ctx, http.MethodPost, "/profiles", nil, input, &resp)
	if err != nil {
		return models.Profile{}, "", err
	}
	return resp.Profile, resp.Message, nil
}

// Me identité et profil du compte connecté ; Profile est nil tant que la
// fiche n'existe pas
type Me struct {
	User    models.AuthUser `json:"user"`
	Profile *models.Profile `json:"profile"`
}

func (g *Gateway) Me(ctx context.Context) (Me, error) {
	var me Me
	err := g.do(ctx, http.MethodGet, "/me", nil, nil, &me)
	return me, err
}

// UpdateProfile patch partiel, retourne la fiche relue par le serveur
func (g *Gateway) UpdateProfile(ctx context.Context, patch map[string]interface{}) (models.Profile, error) {
	var resp struct {
		Profile models.Profile `json:"profile"`
	}
	err := g.do(ctx, http.MethodPatch, "/profiles/me", nil, patch, &resp)
	return resp.Profile, err
}

// Products liste du catalogue ; category et country vides = pas de filtre
func (g *Gateway) Products(ctx context.Context, category, country string) ([]models.Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if country != "" {
		query.Set("country", country)
	}
	var products []models.Product
	err := g.do(ctx, http.MethodGet, "/products", query, nil, &products)
	return products, err
}

// Featured derniers produits pour le fil d'accueil
func (g *Gateway) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", limit))
	}
	var products []models.Product
	err := g.do(ctx, http.MethodGet, "/products/featured", query, nil, &products)
	return products, err
}

// Search correspondance de sous-chaîne côté serveur sur titre OU
// description, 20 lignes au plus
func (g *Gateway) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	query := url.Values{}
	query.Set("q", keyword)
	var products []models.Product
	err := g.do(ctx, http.MethodGet, "/products/search", query, nil, &products)
	return products, err
}

// ProductDetail fiche produit avec le résumé de son fournisseur
type ProductDetail struct {
	Product  models.Product `json:"product"`
	Supplier *struct {
		ID        string `json:"id"`
		FullName  string `json:"full_name"`
		AvatarURL string `json:"avatar_url"`
		City      string `json:"city"`
		Country   string `json:"country"`
	} `json:"supplier"`
}

func (g *Gateway) Product(ctx context.Context, id string) (ProductDetail, error) {
	var detail ProductDetail
	err := g.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &detail)
	return detail, err
}

// Suppliers annuaire, country vide = tous les pays
func (g *Gateway) Suppliers(ctx context.Context, country string) ([]models.Profile, error) {
	query := url.Values{}
	if country != "" {
		query.Set("country", country)
	}
	var suppliers []models.Profile
	err := g.do(ctx, http.MethodGet, "/suppliers", query, nil, &suppliers)
	return suppliers, err
}

func (g *Gateway) Supplier(ctx context.Context, id string) (models.Profile, error) {
	var supplier models.Profile
	err := g.do(ctx, http.MethodGet, "/suppliers/"+url.PathEscape(id), nil, nil, &supplier)
	return supplier, err
}

func (g *Gateway) SupplierProducts(ctx context.Context, id string) ([]models.Product, error) {
	var products []models.Product
	err := g.do(ctx, http.MethodGet, "/suppliers/"+url.PathEscape(id)+"/products", nil, nil, &products)
	return products, err
}
