package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/model"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON sends v with status. Headers are already written when encoding
// fails, so the error is dropped.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a JSON body into v. An empty or malformed body is a
// validation error.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewValidationError("empty request body")
		}
		return model.NewValidationError("invalid request body")
	}
	return nil
}

// StatusForKind maps an error kind to an HTTP status.
func StatusForKind(kind model.ErrorKind) int {
	switch kind {
	case model.KindValidation:
		return http.StatusBadRequest
	case model.KindConflict:
		return http.StatusConflict
	case model.KindExpired:
		return http.StatusGone
	case model.KindInvalidCredential:
		return http.StatusUnauthorized
	case model.KindInvalidCode:
		return http.StatusBadRequest
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindForbidden:
		return http.StatusForbidden
	case model.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	case model.KindFatal, model.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as {"error", "kind"}. Untagged errors and fatal
// failures are reported without their cause.
func WriteError(w http.ResponseWriter, err error) {
	var e *model.Error
	if !errors.As(err, &e) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "internal server error",
			Kind:  model.KindInternal.String(),
		})
		return
	}

	message := e.Message
	if e.Kind == model.KindFatal || e.Kind == model.KindInternal {
		message = "internal server error"
	}

	writeJSON(w, StatusForKind(e.Kind), errorResponse{
		Error: message,
		Kind:  e.Kind.String(),
	})
}

// base carries what every handler needs to identify the caller.
type base struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// userID returns the authenticated user or writes 401.
func (b base) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, ok := b.contextManager.GetClaimsFromContext(r.Context())
	if !ok || claims.UserID == uuid.Nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error: "unauthorized",
			Kind:  model.KindInvalidCredential.String(),
		})
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func (b base) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch model.KindOf(err) {
	case model.KindStoreUnavailable, model.KindFatal, model.KindInternal:
		b.logger.Error(msg,
			"path", r.URL.Path,
			"error", err.Error())
	default:
		b.logger.Info(msg,
			"path", r.URL.Path,
			"error", err.Error())
	}
	WriteError(w, err)
}

func parseUUID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewValidationError("invalid %s", name)
	}
	return id, nil
}
