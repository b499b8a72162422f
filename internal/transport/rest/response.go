package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// actionResponse is the envelope of every workflow endpoint.
type actionResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func writeOK(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, actionResponse{OK: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, actionResponse{OK: false, Message: message})
}

// handleError maps a service error onto a status code. Caller-facing
// messages carried by domain errors are passed through; anything
// unrecognised is logged and answered with a generic message.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	// Storage wraps adapter errors that may themselves map to other kinds.
	case errors.Is(err, domain.ErrStorage):
		log.ErrorContext(r.Context(), "storage failure", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to save changes. Please try again.")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, reasonOr(err, "Unauthorized."))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, reasonOr(err, "Not found."))
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, reasonOr(err, "Conflict."))
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// reasonOr returns the message of a domain.ReasonError, or fallback for
// wrapped adapter errors whose text is not meant for callers.
func reasonOr(err error, fallback string) string {
	var reason *domain.ReasonError
	if errors.As(err, &reason) {
		return reason.Message
	}
	return fallback
}
