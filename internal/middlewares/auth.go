package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/lunara-travel/fraud-monitor/internal/jwt"
	"github.com/lunara-travel/fraud-monitor/internal/logger"
)

// analystIDKey carries the authenticated analyst's id through the request
// context.
const analystIDKey contextKey = "analystID"

// Tokener extracts and verifies the analyst's bearer token.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AnalystID returns the analyst id stored by AuthMiddleware. The second
// return is false on unauthenticated contexts.
func AnalystID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(analystIDKey).(uuid.UUID)
	return id, ok
}

// AuthMiddleware returns a middleware that rejects requests without a valid
// bearer token and records which analyst is behind each authenticated
// request, both in the request context and in the log stream.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "uri", r.RequestURI, "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "uri", r.RequestURI, "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			logger.Log.Infow("analyst authenticated", "analyst_id", claims.UserID, "uri", r.RequestURI)

			ctx = context.WithValue(ctx, analystIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
