package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/playerdata/internal/adapters/repository"
	service "github.com/okian/playerdata/internal/app"
	"github.com/okian/playerdata/internal/domain/convert"
	"github.com/okian/playerdata/internal/domain/model"
	"github.com/okian/playerdata/pkg/logger"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrPayloadTooLarge = errors.New("payload too large")
)

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// statusFor maps an error to its HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrPayloadTooLarge), errors.Is(err, service.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge, "payload_too_large"
	case errors.Is(err, convert.ErrMalformedInput):
		return http.StatusUnprocessableEntity, "malformed_input"
	case errors.Is(err, convert.ErrEmptyResult):
		return http.StatusUnprocessableEntity, "empty_result"
	case errors.Is(err, convert.ErrRemoteError):
		return http.StatusNotFound, "remote_error"
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, convert.ErrUnknownFormat),
		errors.Is(err, model.ErrInvalidName),
		errors.Is(err, service.ErrWrongFormat),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Error(err),
		)
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg, RequestID: RequestIDFromContext(r.Context())})
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}
