package handlers

import (
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"packsight/internal/models"
)

// Analytics issues its three fetches concurrently and joins them before
// rendering. There is no partial-results path: one failure empties the whole
// page for that render, logged but not blocking.
func Analytics(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := 30
		if v, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && v > 0 {
			days = v
		}

		bc := d.backendFor(r)
		var (
			trends    []models.DamageTrendPoint
			byType    []models.DamageTypeBucket
			suppliers []models.SupplierPerformance
		)
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			trends, err = bc.DamageTrends(ctx, days)
			return err
		})
		g.Go(func() error {
			var err error
			byType, err = bc.DamageByType(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			suppliers, err = bc.SupplierPerformance(ctx, 10)
			return err
		})
		err := g.Wait()
		if d.authFailed(w, r, err) {
			return
		}
		if err != nil {
			d.Log.Errorw("analytics fetch failed", "error", err)
			trends, byType, suppliers = nil, nil, nil
		}
		d.renderApp(w, r, "analytics.tmpl", map[string]any{
			"Title":      "Analytics",
			"Days":       days,
			"Trends":     trends,
			"ByType":     byType,
			"Suppliers":  suppliers,
			"FetchError": err != nil,
		})
	}
}
