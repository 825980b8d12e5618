package rest

import (
	"net/http"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
	"strings"
)

type AuthMiddleware struct {
	tokens port.TokenValidatorPort
}

func NewAuthMiddleware(tokens port.TokenValidatorPort) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate проверяет "Authorization: Bearer <token>" и кладет Identity в контекст.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())

		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing or malformed")
			return
		}

		identity, err := m.tokens.ValidateToken(r.Context(), strings.TrimSpace(token))
		if err != nil {
			logger.Warn("Request with invalid token", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusUnauthorized, domain.ErrTokenInvalid.Error())
			return
		}

		ctx := contextkeys.ContextWithIdentity(r.Context(), identity)
		ctx = contextkeys.ContextWithLogger(ctx, logger.WithFields(port.Fields{"user_id": identity.UserID}))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
