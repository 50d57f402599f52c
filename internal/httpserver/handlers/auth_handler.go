package handlers

import (
	"errors"
	"net/http"
	"strings"

	"packsight/internal/backend"
	"packsight/internal/session"
)

func LoginPage(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Sessions.IsAuthenticated(r) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		d.render(w, "login.tmpl", map[string]any{"Title": "Sign in", "Bare": true})
	}
}

func Login(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		username := strings.TrimSpace(r.FormValue("username"))
		password := r.FormValue("password")
		if username == "" || password == "" {
			d.render(w, "login.tmpl", map[string]any{
				"Title": "Sign in", "Bare": true, "Error": "username and password required", "Username": username,
			})
			return
		}
		if err := d.Sessions.Login(r.Context(), w, username, password); err != nil {
			msg := "login failed"
			if errors.Is(err, backend.ErrUnauthorized) {
				msg = "invalid credentials"
			}
			d.Log.Warnw("login rejected", "username", username, "error", err)
			d.render(w, "login.tmpl", map[string]any{
				"Title": "Sign in", "Bare": true, "Error": msg, "Username": username,
			})
			return
		}
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	}
}

func Logout(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s, ok := session.FromContext(r.Context()); ok {
			d.Wizards.Drop(s.SID, d.Previews)
		}
		d.Sessions.Logout(r.Context(), w, r)
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
