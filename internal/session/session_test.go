package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"packsight/internal/backend"
	"packsight/internal/models"
)

func testBackend(t *testing.T) (*backend.Client, *int) {
	t.Helper()
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/api/v1/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = r.ParseForm()
		if r.PostForm.Get("username") != "u" || r.PostForm.Get("password") != "p" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Incorrect username or password"}`))
			return
		}
		w.Write([]byte(`{"access_token":"abc","token_type":"bearer"}`))
	}))
	t.Cleanup(srv.Close)
	return backend.New(srv.URL), &requests
}

func authedRequest(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestLoginStoresTokenAndAuthenticates(t *testing.T) {
	bc, requests := testBackend(t)
	m := NewManager(NewMemStore(), bc, "test-secret", time.Hour)

	rec := httptest.NewRecorder()
	if err := m.Login(context.Background(), rec, "u", "p"); err != nil {
		t.Fatalf("login: %v", err)
	}

	r := authedRequest(t, rec)
	s, ok := m.FromRequest(r)
	if !ok {
		t.Fatal("session not resolvable after login")
	}
	if s.Token != "abc" {
		t.Errorf("stored token = %q, want abc", s.Token)
	}

	before := *requests
	if !m.IsAuthenticated(r) {
		t.Error("IsAuthenticated false right after login")
	}
	if *requests != before {
		t.Error("IsAuthenticated must not hit the network")
	}
}

func TestLoginRejectedLeavesNoSession(t *testing.T) {
	bc, _ := testBackend(t)
	m := NewManager(NewMemStore(), bc, "test-secret", time.Hour)

	rec := httptest.NewRecorder()
	err := m.Login(context.Background(), rec, "u", "wrong")
	if !errors.Is(err, backend.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("no cookie may be set on failed login")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	bc, requests := testBackend(t)
	m := NewManager(NewMemStore(), bc, "test-secret", time.Hour)

	rec := httptest.NewRecorder()
	if err := m.Login(context.Background(), rec, "u", "p"); err != nil {
		t.Fatal(err)
	}
	r := authedRequest(t, rec)

	before := *requests
	out := httptest.NewRecorder()
	m.Logout(context.Background(), out, r)
	if *requests != before {
		t.Error("logout must not call the backend")
	}

	if m.IsAuthenticated(r) {
		t.Error("IsAuthenticated true right after logout")
	}
	var cleared *http.Cookie
	for _, c := range out.Result().Cookies() {
		if c.Name == CookieName {
			cleared = c
		}
	}
	if cleared == nil || cleared.MaxAge != -1 {
		t.Errorf("cookie not expired: %+v", cleared)
	}
}

func TestForgedCookieRejected(t *testing.T) {
	bc, _ := testBackend(t)
	m := NewManager(NewMemStore(), bc, "test-secret", time.Hour)

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-jwt"})
	if m.IsAuthenticated(r) {
		t.Error("garbage cookie accepted")
	}

	// Signed with a different secret.
	signed, err := signSID([]byte("other-secret"), "some-sid", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	r2 := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r2.AddCookie(&http.Cookie{Name: CookieName, Value: signed})
	if m.IsAuthenticated(r2) {
		t.Error("cookie with wrong signature accepted")
	}
}

func TestStoreExpiry(t *testing.T) {
	store := NewMemStore()
	s := models.Session{SID: "sid-1", Token: "t", ExpiresAt: time.Now().Add(-time.Minute)}
	if err := store.Create(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(context.Background(), "sid-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired session returned: %v", err)
	}
}

func TestRequireRedirectsWithoutSession(t *testing.T) {
	bc, _ := testBackend(t)
	m := NewManager(NewMemStore(), bc, "test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			t.Error("session missing from context inside guarded handler")
		}
		w.WriteHeader(http.StatusOK)
	})
	guarded := m.Require(next)

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/parcels", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Errorf("unauthenticated request: code=%d location=%q", rec.Code, rec.Header().Get("Location"))
	}

	loginRec := httptest.NewRecorder()
	if err := m.Login(context.Background(), loginRec, "u", "p"); err != nil {
		t.Fatal(err)
	}
	rec2 := httptest.NewRecorder()
	guarded.ServeHTTP(rec2, authedRequest(t, loginRec))
	if rec2.Code != http.StatusOK {
		t.Errorf("authenticated request code = %d", rec2.Code)
	}
}
