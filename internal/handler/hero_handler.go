package handler

import (
	"net/http"
	"strconv"

	"amritha-heritage/internal/model"
	"amritha-heritage/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// HeroHandler exposes the hero carousels.
type HeroHandler struct {
	service service.HeroService
	logger  zerolog.Logger
}

// NewHeroHandler creates a new hero handler.
func NewHeroHandler(service service.HeroService, logger zerolog.Logger) *HeroHandler {
	return &HeroHandler{
		service: service,
		logger:  logger.With().Str("handler", "hero").Logger(),
	}
}

// Current handles GET /api/hero/{page}.
func (h *HeroHandler) Current(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Current(r.Context(), chi.URLParam(r, "page"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Select handles PUT /api/hero/{page}/{index}.
func (h *HeroHandler) Select(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidSlide, "invalid slide index", h.logger)
		return
	}

	view, err := h.service.Select(r.Context(), chi.URLParam(r, "page"), index)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
