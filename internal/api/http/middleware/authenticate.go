package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/model"
)

// TokenVerifier resolves session claims from bearer tokens.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (model.Claims, error)
}

// Authenticate validates bearer tokens and injects claims into the request context.
type Authenticate struct {
	verifier       TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(verifier TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{verifier: verifier, contextManager: contextManager, logger: logger}
}

// Handler rejects requests without a valid token with 401.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			writeUnauthorized(w, "missing authorization token", model.KindInvalidCredential)
			return
		}

		claims, err := m.verifier.VerifyToken(r.Context(), tokenString)
		if err != nil {
			m.logger.Info("Authenticate middleware: token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			kind := model.KindOf(err)
			message := "invalid token"
			if kind == model.KindExpired {
				message = "token expired"
			}
			writeUnauthorized(w, message, kind)
			return
		}
		if claims.UserID == uuid.Nil {
			writeUnauthorized(w, "invalid token", model.KindInvalidCredential)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetClaimsToContext(r.Context(), claims)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

func writeUnauthorized(w http.ResponseWriter, message string, kind model.ErrorKind) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
		"kind":  kind.String(),
	})
}
