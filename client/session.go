package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"tradehub/models"
)

// ErrProfileCreate échec de la création de la fiche profil après que
// l'identité a bien été créée : l'utilisateur doit savoir que son compte
// existe même si le profil manque
var ErrProfileCreate = errors.New("tradehub: profile creation failed")

// AuthEvent notification de changement d'état de session
type AuthEvent string

const (
	EventResumed        AuthEvent = "resumed"
	EventSignedIn       AuthEvent = "signed_in"
	EventSignedOut      AuthEvent = "signed_out"
	EventProfileUpdated AuthEvent = "profile_updated"
)

// Snapshot vue en lecture seule de la session courante
type Snapshot struct {
	UserID   string
	Profile  *models.Profile
	SignedIn bool
	Loading  bool
}

// SessionStore détenteur unique de {identité, session, profil, chargement}.
// Un seul écrivain (les flux d'authentification ci-dessous) ; tous les
// écrans le consomment en lecture.
type SessionStore struct {
	gw        *Gateway
	tokenPath string

	// cadence et échéance du réessai d'insertion du profil après
	// l'inscription, à la place du délai fixe d'attente de l'identité
	profileRetryDelay    time.Duration
	profileRetryDeadline time.Duration

	mu        sync.RWMutex
	loading   bool
	userID    string
	token     string
	profile   *models.Profile
	listeners []func(AuthEvent, Snapshot)
}

// NewSessionStore construit le magasin. tokenPath est le fichier local où
// le jeton de session est conservé entre deux lancements ; vide pour ne
// rien conserver.
func NewSessionStore(gw *Gateway, tokenPath string) *SessionStore {
	return &SessionStore{
		gw:                   gw,
		tokenPath:            tokenPath,
		profileRetryDelay:    200 * time.Millisecond,
		profileRetryDeadline: 5 * time.Second,
		loading:              true,
	}
}

// OnChange abonne un écouteur aux transitions d'état
func (s *SessionStore) OnChange(fn func(AuthEvent, Snapshot)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *SessionStore) notify(event AuthEvent) {
	s.mu.RLock()
	listeners := make([]func(AuthEvent, Snapshot), len(s.listeners))
	copy(listeners, s.listeners)
	snap := s.snapshotLocked()
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(event, snap)
	}
}

func (s *SessionStore) snapshotLocked() Snapshot {
	var profile *models.Profile
	if s.profile != nil {
		p := *s.profile
		profile = &p
	}
	return Snapshot{
		UserID:   s.userID,
		Profile:  profile,
		SignedIn: s.token != "",
		Loading:  s.loading,
	}
}

// Snapshot état courant de la session
func (s *SessionStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Loading vrai tant que la reprise de session est en cours : le visiteur
// est "inconnu", pas "anonyme"
func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Profile fiche du compte connecté, nil sinon
func (s *SessionStore) Profile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Country pays du profil connecté, vide pour un visiteur anonyme ou un
// profil sans pays : les requêtes catalogue ne sont alors pas restreintes
func (s *SessionStore) Country() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return ""
	}
	return s.profile.Country
}

// Resume tente de reprendre la session persistée au lancement
func (s *SessionStore) Resume(ctx context.Context) error {
	token := s.loadToken()
	if token == "" {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		s.notify(EventResumed)
		return nil
	}

	s.gw.SetToken(token)
	me, err := s.gw.Me(ctx)
	if err != nil {
		// jeton périmé ou invalide : repartir anonyme
		s.gw.SetToken("")
		s.clearToken()
		s.mu.Lock()
		s.loading = false
		s.userID = ""
		s.token = ""
		s.profile = nil
		s.mu.Unlock()
		s.notify(EventResumed)
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.loading = false
	s.token = token
	s.userID = me.User.ID.Hex()
	s.profile = me.Profile // nil toléré : fiche pas encore créée
	s.mu.Unlock()
	s.notify(EventResumed)
	return nil
}

// SignIn connexion par email et mot de passe puis lecture du profil
func (s *SessionStore) SignIn(ctx context.Context, email, password string) error {
	token, userID, err := s.gw.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.persistToken(token)

	me, err := s.gw.Me(ctx)

	s.mu.Lock()
	s.loading = false
	s.token = token
	s.userID = userID
	if err == nil {
		s.profile = me.Profile
	} else {
		s.profile = nil
	}
	s.mu.Unlock()
	s.notify(EventSignedIn)
	return nil
}

// SignUp inscription en deux étapes : identité puis fiche profil. L'insertion
// du profil est réessayée tant que l'identité n'est pas visible, bornée par
// une échéance, au lieu d'un délai fixe. Un échec ici est ErrProfileCreate,
// distinct d'une erreur d'authentification : l'identité, elle, existe.
// Retourne le message de confirmation, différent pour les fournisseurs.
func (s *SessionStore) SignUp(ctx context.Context, email, password string, input ProfileInput) (string, error) {
	if _, err := s.gw.Register(ctx, email, password); err != nil {
		return "", err
	}

	token, userID, err := s.gw.Login(ctx, email, password)
	if err != nil {
		return "", err
	}
	s.persistToken(token)

	profile, message, err := s.createProfileWithRetry(ctx, input)
	if err != nil {
		// le compte est créé et connecté, seul le profil manque
		s.mu.Lock()
		s.loading = false
		s.token = token
		s.userID = userID
		s.profile = nil
		s.mu.Unlock()
		s.notify(EventSignedIn)
		return "", fmt.Errorf("%w: %v", ErrProfileCreate, err)
	}

	s.mu.Lock()
	s.loading = false
	s.token = token
	s.userID = userID
	s.profile = &profile
	s.mu.Unlock()
	s.notify(EventSignedIn)
	return message, nil
}

func (s *SessionStore) createProfileWithRetry(ctx context.Context, input ProfileInput) (models.Profile, string, error) {
	deadline := time.Now().Add(s.profileRetryDeadline)
	for {
		profile, message, err := s.gw.CreateProfile(ctx, input)
		if err == nil {
			return profile, message, nil
		}
		if !errors.Is(err, ErrIdentityNotReady) || time.Now().After(deadline) {
			return models.Profile{}, "", err
		}
		select {
		case <-ctx.Done():
			return models.Profile{}, "", ctx.Err()
		case <-time.After(s.profileRetryDelay):
		}
	}
}

// SignOut efface identité, session et profil de façon synchrone, ainsi que
// le jeton persisté
func (s *SessionStore) SignOut(ctx context.Context) {
	// meilleur effort côté serveur, l'état local est vidé quoi qu'il arrive
	_ = s.gw.do(ctx, "POST", "/logout", nil, nil, nil)
	s.gw.SetToken("")
	s.clearToken()

	s.mu.Lock()
	s.loading = false
	s.userID = ""
	s.token = ""
	s.profile = nil
	s.mu.Unlock()
	s.notify(EventSignedOut)
}

// UpdateProfile patch partiel puis remplacement par la fiche relue, pour
// récupérer les champs calculés côté serveur
func (s *SessionStore) UpdateProfile(ctx context.Context, patch map[string]interface{}) error {
	s.mu.RLock()
	signedIn := s.token != ""
	s.mu.RUnlock()
	if !signedIn {
		return errors.New("tradehub: not signed in")
	}

	profile, err := s.gw.UpdateProfile(ctx, patch)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.profile = &profile
	s.mu.Unlock()
	s.notify(EventProfileUpdated)
	return nil
}

func (s *SessionStore) persistToken(token string) {
	if s.tokenPath == "" {
		return
	}
	_ = os.WriteFile(s.tokenPath, []byte(token), 0o600)
}

func (s *SessionStore) loadToken() string {
	if s.tokenPath == "" {
		return ""
	}
	raw, err := os.ReadFile(s.tokenPath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func (s *SessionStore) clearToken() {
	if s.tokenPath == "" {
		return
	}
	_ = os.Remove(s.tokenPath)
}
