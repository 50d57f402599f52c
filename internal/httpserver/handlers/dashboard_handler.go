package handlers

import (
	"net/http"

	"packsight/internal/models"
)

// Dashboard is a read page: a fetch failure is logged and rendered as the
// empty state, never a blocking error.
func Dashboard(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bc := d.backendFor(r)
		stats, err := bc.DashboardStats(r.Context())
		if d.authFailed(w, r, err) {
			return
		}
		if err != nil {
			d.Log.Errorw("dashboard stats fetch failed", "error", err)
			d.renderApp(w, r, "dashboard.tmpl", map[string]any{
				"Title": "Dashboard", "Stats": models.DashboardStats{}, "Empty": true,
			})
			return
		}
		d.renderApp(w, r, "dashboard.tmpl", map[string]any{
			"Title": "Dashboard", "Stats": stats,
		})
	}
}
