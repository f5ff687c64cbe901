package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeUserID = "64a000000000000000000001"

// fakeAPI reproduit les réponses du serveur TradeHub pour tester le SDK
type fakeAPI struct {
	mu sync.Mutex

	registered map[string]string // email -> mot de passe
	profile    map[string]interface{}

	// nombre de POST /profiles à refuser avec identity_not_ready
	profileNotReady int
	// simule une panne de la création de profil
	failProfileCreate bool

	profileAttempts int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{registered: map[string]string{}}
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, body interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}

	authorized := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer tok-test"
	}

	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.registered[in.Email]; ok {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "Un compte existe déjà avec cet email"})
			return
		}
		f.registered[in.Email] = in.Password
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Identité créée", "user_id": fakeUserID})
	})

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		defer f.mu.Unlock()
		if pass, ok := f.registered[in.Email]; !ok || pass != in.Password {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Email ou mot de passe invalide"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": "tok-test", "user_id": fakeUserID})
	})

	mux.HandleFunc("POST /logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Déconnexion réussie"})
	})

	mux.HandleFunc("POST /profiles", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token required"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.profileAttempts++
		if f.profileNotReady > 0 {
			f.profileNotReady--
			writeJSON(w, http.StatusConflict, map[string]string{
				"error": "Identité pas encore disponible, réessayez",
				"code":  "identity_not_ready",
			})
			return
		}
		if f.failProfileCreate {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Échec de la création du profil"})
			return
		}
		var in map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&in)
		now := time.Now().UTC().Format(time.RFC3339)
		f.profile = map[string]interface{}{
			"id":         fakeUserID,
			"user_type":  in["user_type"],
			"full_name":  in["full_name"],
			"phone":      in["phone"],
			"country":    in["country"],
			"city":       in["city"],
			"address":    in["address"],
			"created_at": now,
			"updated_at": now,
		}
		message := "Compte créé avec succès!"
		if in["user_type"] == "supplier" {
			message = "Compte fournisseur créé! Veuillez effectuer le paiement de 5USD au +234979401982 ou +243842578529"
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{"message": message, "profile": f.profile})
	})

	mux.HandleFunc("GET /me", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"user":    map[string]interface{}{"id": fakeUserID, "email": "test@tradehub.africa"},
			"profile": f.profile,
		})
	})

	mux.HandleFunc("PATCH /profiles/me", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token required"})
			return
		}
		var patch map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&patch)
		f.mu.Lock()
		defer f.mu.Unlock()
		for k, v := range patch {
			f.profile[k] = v
		}
		f.profile["updated_at"] = time.Now().UTC().Add(time.Minute).Format(time.RFC3339)
		writeJSON(w, http.StatusOK, map[string]interface{}{"profile": f.profile})
	})

	return mux
}

func newTestStore(t *testing.T, api *fakeAPI) (*SessionStore, string) {
	t.Helper()
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	tokenPath := filepath.Join(t.TempDir(), "session.token")
	gw := NewGateway(server.URL, 5*time.Second)
	store := NewSessionStore(gw, tokenPath)
	store.profileRetryDelay = 10 * time.Millisecond
	store.profileRetryDeadline = time.Second
	return store, tokenPath
}

func signUpInput(userType string) ProfileInput {
	return ProfileInput{
		UserType: userType,
		FullName: "Awa Diop",
		Phone:    "+221770000000",
		Country:  "Sénégal",
		City:     "Dakar",
		Address:  "Rue 12, Médina",
	}
}

func TestSessionStore_SignUpMessages(t *testing.T) {
	t.Run("compte simple", func(t *testing.T) {
		store, _ := newTestStore(t, newFakeAPI())

		message, err := store.SignUp(context.Background(), "a@b.cd", "secret1", signUpInput("simple"))
		require.NoError(t, err)
		assert.Equal(t, "Compte créé avec succès!", message)

		snap := store.Snapshot()
		assert.True(t, snap.SignedIn)
		require.NotNil(t, snap.Profile)
		assert.Equal(t, "simple", snap.Profile.UserType)
	})

	t.Run("compte fournisseur", func(t *testing.T) {
		store, _ := newTestStore(t, newFakeAPI())

		// le fournisseur reçoit les instructions de paiement, pas le
		// simple message de succès
		message, err := store.SignUp(context.Background(), "a@b.cd", "secret1", signUpInput("supplier"))
		require.NoError(t, err)
		assert.Contains(t, message, "5USD")
		assert.NotEqual(t, "Compte créé avec succès!", message)
	})
}

func TestSessionStore_SignUpRetriesUntilIdentityVisible(t *testing.T) {
	api := newFakeAPI()
	api.profileNotReady = 2
	store, _ := newTestStore(t, api)

	_, err := store.SignUp(context.Background(), "a@b.cd", "secret1", signUpInput("simple"))
	require.NoError(t, err)

	// deux refus identity_not_ready puis succès
	assert.Equal(t, 3, api.profileAttempts)
	assert.NotNil(t, store.Profile())
}

func TestSessionStore_ProfileCreateFailureIsDistinct(t *testing.T) {
	api := newFakeAPI()
	api.failProfileCreate = true
	store, _ := newTestStore(t, api)

	_, err := store.SignUp(context.Background(), "a@b.cd", "secret1", signUpInput("simple"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileCreate)

	// l'identité existe et la session est ouverte, seule la fiche manque
	snap := store.Snapshot()
	assert.True(t, snap.SignedIn)
	assert.Nil(t, snap.Profile)
}

func TestSessionStore_SignInInvalidCredentials(t *testing.T) {
	api := newFakeAPI()
	api.registered["a@b.cd"] = "secret1"
	store, _ := newTestStore(t, api)

	err := store.SignIn(context.Background(), "a@b.cd", "mauvais")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email ou mot de passe invalide", apiErr.Message)
	assert.False(t, store.Snapshot().SignedIn)
}

func TestSessionStore_SignOutClearsEverything(t *testing.T) {
	store, tokenPath := newTestStore(t, newFakeAPI())

	_, err := store.SignUp(context.Background(), "a@b.cd", "secret1", signUpInput("simple"))
	require.NoError(t, err)
	_, err = os.Stat(tokenPath)
	require.NoError(t, err, "le jeton doit être persisté après l'inscription")

	var gotEvent AuthEvent
	store.OnChange(func(event AuthEvent, snap Snapshot) { gotEvent = event })

	store.SignOut(context.Background())

	snap := store.Snapshot()
	assert.False(t, snap.SignedIn)
	assert.Empty(t, snap.UserID)
	assert.Nil(t, snap.Profile)
	assert.Equal(t, EventSignedOut, gotEvent)

	// le cache local du jeton est vidé avec la session
	_, err = os.Stat(tokenPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSessionStore_ResumePersistedSession(t *testing.T) {
	api := newFakeAPI()
	api.registered["a@b.cd"] = "secret1"
	api.profile = map[string]interface{}{
		"id": fakeUserID, "user_type": "simple", "full_name": "Awa Diop",
		"phone": "+221770000000", "country": "Sénégal", "city": "Dakar",
		"address":    "Rue 12",
		"created_at": time.Now().UTC().Format(time.RFC3339),
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	store, tokenPath := newTestStore(t, api)
	require.NoError(t, os.WriteFile(tokenPath, []byte("tok-test"), 0o600))

	assert.True(t, store.Loading(), "visiteur inconnu tant que la reprise n'a pas abouti")

	require.NoError(t, store.Resume(context.Background()))

	snap := store.Snapshot()
	assert.False(t, snap.Loading)
	assert.True(t, snap.SignedIn)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Sénégal", store.Country())
}

func TestSessionStore_ResumeExpiredToken(t *testing.T) {
	store, tokenPath := newTestStore(t, newFakeAPI())
	require.NoError(t, os.WriteFile(tokenPath, []byte("tok-expire"), 0o600))

	require.NoError(t, store.Resume(context.Background()))

	// jeton rejeté : retour anonyme, cache purgé
	snap := store.Snapshot()
	assert.False(t, snap.Loading)
	assert.False(t, snap.SignedIn)
	_, err := os.Stat(tokenPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSessionStore_ResumeWithoutToken(t *testing.T) {
	store, _ := newTestStore(t, newFakeAPI())
	require.NoError(t, store.Resume(context.Background()))

	snap := store.Snapshot()
	assert.False(t, snap.Loading)
	assert.False(t, snap.SignedIn)
	assert.Empty(t, store.Country())
}

func TestSessionStore_UpdateProfileRefetches(t *testing.T) {
	store, _ := newTestStore(t, newFakeAPI())
	_, err := store.SignUp(context.Background(), "a@b.cd", "secret1", signUpInput("simple"))
	require.NoError(t, err)

	before := store.Profile().UpdatedAt

	err = store.UpdateProfile(context.Background(), map[string]interface{}{"city": "Thiès"})
	require.NoError(t, err)

	profile := store.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "Thiès", profile.City)
	// la fiche relue porte l'horodatage calculé côté serveur
	assert.True(t, profile.UpdatedAt.After(before))
}

func TestSessionStore_UpdateProfileRequiresSession(t *testing.T) {
	store, _ := newTestStore(t, newFakeAPI())
	err := store.UpdateProfile(context.Background(), map[string]interface{}{"city": "Thiès"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProfileCreate)
}

func TestCountryScopedProductFetch(t *testing.T) {
	var gotCountry []string
	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCountry = append(gotCountry, r.URL.Query().Get("country"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(catalog.Close)

	api := newFakeAPI()
	store, _ := newTestStore(t, api)
	catalogGW := NewGateway(catalog.URL, time.Second)

	// visiteur anonyme : aucune restriction de pays
	_, err := catalogGW.Products(context.Background(), "", store.Country())
	require.NoError(t, err)

	// profil connecté : la requête porte le filtre d'égalité sur son pays
	_, err = store.SignUp(context.Background(), "a@b.cd", "secret1", signUpInput("simple"))
	require.NoError(t, err)
	_, err = catalogGW.Products(context.Background(), "", store.Country())
	require.NoError(t, err)

	require.Len(t, gotCountry, 2)
	assert.Empty(t, gotCountry[0])
	assert.Equal(t, "Sénégal", gotCountry[1])
}

func TestGateway_RegisterDuplicateEmail(t *testing.T) {
	api := newFakeAPI()
	api.registered["a@b.cd"] = "secret1"
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	gw := NewGateway(server.URL, 5*time.Second)
	_, err := gw.Register(context.Background(), "a@b.cd", "autre")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Un compte existe déjà avec cet email", apiErr.Message)
}

func TestGateway_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Produit introuvable"}`, http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	gw := NewGateway(server.URL, 5*time.Second)
	_, err := gw.Product(context.Background(), "inconnu")
	assert.True(t, errors.Is(err, ErrNotFound))
}
