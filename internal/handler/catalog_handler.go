package handler

import (
	"net/http"

	"amritha-heritage/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CatalogHandler serves the static content catalogs.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// Dishes handles GET /api/catalog/dishes?category=.
func (h *CatalogHandler) Dishes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Dishes(r.Context(), r.URL.Query().Get("category")))
}

// DishCategories handles GET /api/catalog/dishes/categories.
func (h *CatalogHandler) DishCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.DishCategories(r.Context()))
}

// Dish handles GET /api/catalog/dishes/{id}.
func (h *CatalogHandler) Dish(w http.ResponseWriter, r *http.Request) {
	dish, err := h.service.Dish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

// Rooms handles GET /api/catalog/rooms.
func (h *CatalogHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Rooms(r.Context()))
}

// Room handles GET /api/catalog/rooms/{id}.
func (h *CatalogHandler) Room(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.Room(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *CatalogHandler) Destinations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Destinations(r.Context()))
}

func (h *CatalogHandler) Features(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Features(r.Context()))
}

func (h *CatalogHandler) Specials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Specials(r.Context()))
}

func (h *CatalogHandler) Highlights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Highlights(r.Context()))
}

// Menu handles GET /api/catalog/menu?section=.
func (h *CatalogHandler) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Menu(r.Context(), r.URL.Query().Get("section")))
}
