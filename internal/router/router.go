package router

import (
	"net/http"

	"amritha-heritage/internal/handler"
	"amritha-heritage/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Catalog     *handler.CatalogHandler
	Hero        *handler.HeroHandler
	Reservation *handler.ReservationHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Applied in order: RequestID -> RealIP -> Recovery -> Logging -> CORS
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api/catalog", func(r chi.Router) {
		r.Get("/dishes", h.Catalog.Dishes)
		r.Get("/dishes/categories", h.Catalog.DishCategories)
		r.Get("/dishes/{id}", h.Catalog.Dish)
		r.Get("/rooms", h.Catalog.Rooms)
		r.Get("/rooms/{id}", h.Catalog.Room)
		r.Get("/destinations", h.Catalog.Destinations)
		r.Get("/features", h.Catalog.Features)
		r.Get("/specials", h.Catalog.Specials)
		r.Get("/highlights", h.Catalog.Highlights)
		r.Get("/menu", h.Catalog.Menu)
	})

	r.Route("/api/hero/{page}", func(r chi.Router) {
		r.Get("/", h.Hero.Current)
		r.Put("/{index}", h.Hero.Select)
	})

	r.Route("/api/reservations", func(r chi.Router) {
		r.Get("/table", h.Reservation.TableView)
		r.Post("/table", h.Reservation.SubmitTable)
		r.Get("/room", h.Reservation.RoomView)
		r.Post("/room", h.Reservation.SubmitRoom)

		// Staff lookup of acknowledged reservations
		r.With(middleware.APIKeyAuth(apiKey, logger)).Get("/{id}", h.Reservation.GetByID)
	})

	r.Post("/api/contact", h.Reservation.SubmitContact)

	return r
}
