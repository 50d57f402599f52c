package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"packsight/internal/httpserver/handlers"
)

func NewRouter(d handlers.Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)

	r.Get("/login", handlers.LoginPage(d))
	r.Post("/login", handlers.Login(d))

	r.Group(func(protected chi.Router) {
		protected.Use(d.Sessions.Require)
		protected.Post("/logout", handlers.Logout(d))
		protected.Get("/dashboard", handlers.Dashboard(d))
		protected.Get("/analytics", handlers.Analytics(d))
		protected.Get("/parcels", handlers.Parcels(d))
		protected.Get("/parcels/{parcelID}", handlers.ParcelDetail(d))
		protected.Post("/parcels/{parcelID}/status", handlers.UpdateParcelStatus(d))
		protected.Get("/inspections", handlers.Inspections(d))
		protected.Get("/inspections/new", handlers.NewInspection(d))
		protected.Post("/inspections/new/start", handlers.StartInspection(d))
		protected.Post("/inspections/new/back", handlers.BackToParcelInfo(d))
		protected.Post("/inspections/new/angle", handlers.SelectAngle(d))
		protected.Post("/inspections/new/images", handlers.UploadImages(d))
		protected.Post("/inspections/new/images/remove", handlers.RemoveImage(d))
		protected.Post("/inspections/new/submit", handlers.SubmitInspection(d))
		protected.Get("/previews/{previewID}", handlers.Preview(d))
	})

	r.Get("/static/style.css", handlers.ServeCSS)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	// Everything else lands on the dashboard; the guard bounces
	// unauthenticated visitors to /login from there.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})
	return r
}
