package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"packsight/internal/backend"
	"packsight/internal/capture"
	"packsight/internal/records"
	"packsight/internal/session"
	"packsight/internal/wizard"
)

// Deps is everything a page handler closes over.
type Deps struct {
	Backend  *backend.Client
	Sessions *session.Manager
	Wizards  *wizard.Manager
	Previews *capture.Registry
	Records  records.Store
	Log      *zap.SugaredLogger

	t pageTemplates
}

func NewDeps(bc *backend.Client, sm *session.Manager, wm *wizard.Manager, reg *capture.Registry, rs records.Store, lg *zap.SugaredLogger) Deps {
	return Deps{
		Backend:  bc,
		Sessions: sm,
		Wizards:  wm,
		Previews: reg,
		Records:  rs,
		Log:      lg,
		t:        parseTemplates(),
	}
}

// backendFor binds the backend client to the request's session token.
func (d Deps) backendFor(r *http.Request) *backend.Client {
	if s, ok := session.FromContext(r.Context()); ok {
		return d.Backend.WithToken(s.Token)
	}
	return d.Backend
}

// authFailed sends the user back to login when the backend rejected the
// session's token mid-page. Returns true when it handled the error.
func (d Deps) authFailed(w http.ResponseWriter, r *http.Request, err error) bool {
	if err == nil || !errors.Is(err, backend.ErrUnauthorized) {
		return false
	}
	d.Sessions.Logout(r.Context(), w, r)
	http.Redirect(w, r, "/login", http.StatusFound)
	return true
}

// renderApp renders a page inside the signed-in shell. The profile is
// fetched fresh on every page load so the header reflects the backend's
// current view of the user; a rejected token ends the session on the spot.
// Any other fetch failure degrades to a shell without the name.
func (d Deps) renderApp(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	u, err := d.backendFor(r).CurrentUser(r.Context())
	if err != nil {
		if d.authFailed(w, r, err) {
			return
		}
		d.Log.Warnw("fetch current user failed", "error", err)
	} else {
		data["User"] = u
	}
	d.render(w, page, data)
}

func (d Deps) render(w http.ResponseWriter, page string, data map[string]any) {
	t, ok := d.t[page]
	if !ok {
		http.Error(w, "template not found: "+page, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		d.Log.Errorw("render failed", "page", page, "error", err)
	}
}
