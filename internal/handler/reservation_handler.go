package handler

import (
	"errors"
	"net/http"

	"amritha-heritage/internal/booking"
	"amritha-heritage/internal/model"
	"amritha-heritage/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReservationHandler handles the booking pages and their submissions.
type ReservationHandler struct {
	service service.ReservationService
	logger  zerolog.Logger
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(service service.ReservationService, logger zerolog.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		logger:  logger.With().Str("handler", "reservation").Logger(),
	}
}

// TableView handles GET /api/reservations/table.
func (h *ReservationHandler) TableView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.TableView(r.Context(), r.URL.Query()))
}

// SubmitTable handles POST /api/reservations/table. The body is either JSON
// or form encoded.
func (h *ReservationHandler) SubmitTable(w http.ResponseWriter, r *http.Request) {
	var (
		req booking.TableRequest
		err error
	)
	if isForm(r) {
		values, perr := formValues(w, r)
		if perr != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidForm, "invalid form body", h.logger)
			return
		}
		req, err = booking.TableRequestFromValues(values)
	} else {
		req = booking.NewTableRequest()
		err = h.decode(w, r, &req)
	}
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	res, err := h.service.SubmitTable(r.Context(), r.Header.Get(IdempotencyKeyHeader), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// RoomView handles GET /api/reservations/room.
func (h *ReservationHandler) RoomView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.RoomView(r.Context(), r.URL.Query()))
}

// SubmitRoom handles POST /api/reservations/room.
func (h *ReservationHandler) SubmitRoom(w http.ResponseWriter, r *http.Request) {
	var (
		req booking.RoomRequest
		err error
	)
	if isForm(r) {
		values, perr := formValues(w, r)
		if perr != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidForm, "invalid form body", h.logger)
			return
		}
		req, err = booking.RoomRequestFromValues(values)
	} else {
		req = booking.NewRoomRequest()
		err = h.decode(w, r, &req)
	}
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	res, err := h.service.SubmitRoom(r.Context(), r.Header.Get(IdempotencyKeyHeader), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// SubmitContact handles POST /api/contact.
func (h *ReservationHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var (
		form booking.ContactForm
		err  error
	)
	if isForm(r) {
		values, perr := formValues(w, r)
		if perr != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidForm, "invalid form body", h.logger)
			return
		}
		form, err = booking.ContactFormFromValues(values)
	} else {
		err = h.decode(w, r, &form)
	}
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	res, err := h.service.SubmitContact(r.Context(), r.Header.Get(IdempotencyKeyHeader), form)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// GetByID handles GET /api/reservations/{id}.
func (h *ReservationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidField, "invalid reservation ID format", h.logger)
		return
	}

	res, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// errMalformedJSON marks a body that is not valid JSON for the request.
var errMalformedJSON = errors.New("malformed JSON body")

func (h *ReservationHandler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := decodeJSON(w, r, v); err != nil {
		h.logger.Debug().Err(err).Msg("failed to decode request body")
		return errMalformedJSON
	}
	return nil
}

// writeDecodeError reports a body that could not be turned into a request.
// Form field errors carry their domain code.
func (h *ReservationHandler) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errMalformedJSON) {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	writeServiceError(w, r, err, h.logger)
}
