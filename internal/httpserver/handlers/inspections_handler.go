package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

// Inspections lists recent local submissions, newest first. The flash
// summary after a wizard run arrives via query params.
func Inspections(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := strings.TrimSpace(r.URL.Query().Get("search"))
		recs, err := d.Records.List(r.Context(), search, 50)
		if err != nil {
			d.Log.Errorw("list inspection records failed", "error", err)
		}

		data := map[string]any{
			"Title":  "Inspections",
			"Rows":   recs,
			"Search": search,
		}
		if v := r.URL.Query().Get("processed"); v != "" {
			processed, _ := strconv.Atoi(v)
			damaged, _ := strconv.Atoi(r.URL.Query().Get("damaged"))
			submitted, _ := strconv.Atoi(r.URL.Query().Get("submitted"))
			data["Flash"] = map[string]int{
				"Submitted": submitted,
				"Processed": processed,
				"Damaged":   damaged,
			}
		}
		d.renderApp(w, r, "inspections_list.tmpl", data)
	}
}
