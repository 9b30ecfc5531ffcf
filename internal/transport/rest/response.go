package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error     string          `json:"error"`
	Fields    []fieldResponse `json:"fields,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, errorResponse{
		Error:     message,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

// statusFor maps a domain error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInsufficientCredit):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRenderFailed), errors.Is(err, domain.ErrUploadFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// handleError writes err as a JSON error. Unexpected errors are logged and
// their details hidden from the client.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := statusFor(err)
	resp := errorResponse{RequestID: ctxutil.RequestIDFromCtx(r.Context())}

	switch status {
	case http.StatusBadRequest:
		resp.Error = "validation error"
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
			}
		}
	case http.StatusUnauthorized:
		resp.Error = "authentication required"
	case http.StatusPaymentRequired:
		resp.Error = "insufficient credit"
	case http.StatusForbidden:
		resp.Error = "forbidden"
	case http.StatusNotFound:
		resp.Error = "not found"
	case http.StatusConflict:
		resp.Error = err.Error()
	case http.StatusBadGateway:
		log.WarnContext(r.Context(), "upstream failure", slog.String("error", err.Error()))
		resp.Error = err.Error()
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", resp.RequestID))
		resp.Error = "internal server error"
	}

	writeJSON(w, status, resp)
}

// decodeJSON reads a JSON body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, w http.ResponseWriter, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}

// currentUser returns the authenticated user ID.
func currentUser(r *http.Request) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return id, nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}
