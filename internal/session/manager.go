package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"packsight/internal/backend"
	"packsight/internal/models"
)

// Manager implements the auth service: login, logout, and the presence check
// pages gate on. Presence means a valid cookie pointing at a live session;
// the backend token is never revalidated here, so a revoked token stays
// "authenticated" until a protected call fails.
type Manager struct {
	store   Store
	backend *backend.Client
	secret  []byte
	ttl     time.Duration
}

func NewManager(store Store, bc *backend.Client, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, backend: bc, secret: []byte(secret), ttl: ttl}
}

// Login exchanges credentials with the backend, stores the issued token in a
// fresh session, and sets the cookie. Rejected credentials surface as the
// backend's error, wrapped with backend.ErrUnauthorized.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, username, password string) error {
	tr, err := m.backend.Login(ctx, username, password)
	if err != nil {
		return err
	}
	s := models.Session{
		SID:       uuid.NewString(),
		Token:     tr.AccessToken,
		Username:  username,
		ExpiresAt: time.Now().Add(m.ttl),
		CreatedAt: time.Now(),
	}
	if err := m.store.Create(ctx, s); err != nil {
		return err
	}
	signed, err := signSID(m.secret, s.SID, m.ttl)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl / time.Second),
	})
	return nil
}

// Logout drops the session record and expires the cookie. No backend call.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if s, ok := m.FromRequest(r); ok {
		_ = m.store.Delete(ctx, s.SID)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// FromRequest resolves the cookie into its session record.
func (m *Manager) FromRequest(r *http.Request) (models.Session, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return models.Session{}, false
	}
	sid, err := verifySID(m.secret, c.Value)
	if err != nil {
		return models.Session{}, false
	}
	s, err := m.store.Get(r.Context(), sid)
	if err != nil {
		return models.Session{}, false
	}
	return s, true
}

// IsAuthenticated is a presence check only; no network call is made.
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	_, ok := m.FromRequest(r)
	return ok
}
