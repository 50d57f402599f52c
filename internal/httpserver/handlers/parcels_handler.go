package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"packsight/internal/backend"
	"packsight/internal/models"
)

// Parcels lists with backend-side filtering only: the page renders exactly
// the rows returned. Filter selects resubmit the form; the search box only
// fires on explicit submit.
func Parcels(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		params := backend.ListParams{
			Status: q.Get("status"),
			Search: strings.TrimSpace(q.Get("search")),
		}
		if v := q.Get("has_damage"); v == "true" || v == "false" {
			b := v == "true"
			params.HasDamage = &b
		}

		bc := d.backendFor(r)
		page, err := bc.ListParcels(r.Context(), params)
		if d.authFailed(w, r, err) {
			return
		}
		if err != nil {
			d.Log.Errorw("parcel list fetch failed", "error", err)
		}
		d.renderApp(w, r, "parcels_list.tmpl", map[string]any{
			"Title":      "Parcels",
			"Rows":       page.Parcels,
			"Total":      page.Total,
			"Status":     params.Status,
			"HasDamage":  q.Get("has_damage"),
			"Search":     params.Search,
			"Statuses":   models.ParcelStatuses,
			"FetchError": err != nil,
		})
	}
}

func ParcelDetail(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "parcelID")
		bc := d.backendFor(r)
		detail, err := bc.GetParcel(r.Context(), id)
		if d.authFailed(w, r, err) {
			return
		}
		if err != nil {
			d.Log.Errorw("parcel detail fetch failed", "parcel_id", id, "error", err)
			http.NotFound(w, r)
			return
		}
		renderParcelDetail(d, w, r, detail, r.URL.Query().Get("error"))
	}
}

// UpdateParcelStatus requests the transition and reloads the authoritative
// detail afterwards. A backend rejection renders as an inline alert on the
// detail page (write-failure handling).
func UpdateParcelStatus(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		id := chi.URLParam(r, "parcelID")
		status := r.FormValue("status")
		if status == "" {
			http.Error(w, "status required", http.StatusBadRequest)
			return
		}

		bc := d.backendFor(r)
		if _, err := bc.UpdateParcelStatus(r.Context(), id, status); err != nil {
			if d.authFailed(w, r, err) {
				return
			}
			d.Log.Errorw("status update failed", "parcel_id", id, "status", status, "error", err)
			detail, derr := bc.GetParcel(r.Context(), id)
			if derr != nil {
				http.Error(w, err.Error(), http.StatusBadGateway)
				return
			}
			renderParcelDetail(d, w, r, detail, "Status update failed: "+err.Error())
			return
		}
		http.Redirect(w, r, "/parcels/"+id, http.StatusFound)
	}
}

func renderParcelDetail(d Deps, w http.ResponseWriter, r *http.Request, detail models.ParcelDetail, errMsg string) {
	d.renderApp(w, r, "parcel_detail.tmpl", map[string]any{
		"Title":    "Parcel " + detail.TrackingNumber,
		"Parcel":   detail,
		"Statuses": models.ParcelStatuses,
		"Error":    errMsg,
	})
}
