package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"txwatch/pkg/jwt"

	"go.uber.org/zap"
)

const (
	AuthTokenHeader        = "AUTH_TOKEN"
	OperatorKey     ctxKey = "operator"
)

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Auth rejects requests without a valid AUTH_TOKEN header and stores the
// operator name in the request context.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFrom(r.Context())

		token := r.Header.Get(AuthTokenHeader)
		if token == "" {
			m.unauthorized(w, "AUTH_TOKEN header is required")
			m.logs.Errorw("missing AUTH_TOKEN header", "path", r.URL.Path, "request_id", requestID)
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			m.unauthorized(w, err.Error())
			m.logs.Errorw("invalid auth token", "error", err, "path", r.URL.Path, "request_id", requestID)
			return
		}

		ctx := context.WithValue(r.Context(), OperatorKey, jwt.Operator(claims))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   detail,
	})
}
