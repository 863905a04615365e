package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"

	"amritha-heritage/internal/booking"
	"amritha-heritage/internal/model"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// IdempotencyKeyHeader carries the client-chosen key that deduplicates resubmissions.
const IdempotencyKeyHeader = "Idempotency-Key"

// maxBodyBytes bounds submitted bodies.
const maxBodyBytes = 64 << 10

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to tell the client.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", message).Str("code", code).Int("status", status).Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// writeServiceError maps err to a response. Domain errors become 4xx with
// their code; anything else is a 500 with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		logger.Warn().Interface("fields", verr.Fields).Msg("form rejected")
		writeJSON(w, http.StatusUnprocessableEntity, model.ErrorResponse{
			Error:     model.ErrInvalidForm.Message,
			Code:      model.ErrCodeInvalidForm,
			Fields:    verr.Fields,
			RequestID: middleware.GetReqID(r.Context()),
		})
		return
	}

	var derr *model.DomainError
	if errors.As(err, &derr) {
		writeError(w, r, statusFor(derr.Code, r.Method), derr.Code, derr.Message, logger)
		return
	}

	logger.Error().Err(err).Msg("unexpected service error")
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

func statusFor(code, method string) int {
	switch code {
	case model.ErrCodeItemNotFound:
		if method == http.MethodGet {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	case model.ErrCodeReservationNotFound, model.ErrCodeUnknownPage:
		return http.StatusNotFound
	case model.ErrCodeIdempotencyConflict:
		return http.StatusConflict
	case model.ErrCodeSelectionEmpty:
		return http.StatusUnprocessableEntity
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// isForm reports whether the request body is form encoded.
func isForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

// formValues parses a form-encoded body.
func formValues(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}

// decodeJSON decodes a JSON body into v, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
