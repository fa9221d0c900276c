package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"

	"problem_app/internal/common"
	"problem_app/internal/common/security"
)

type contextKey string

const identityCtxKey contextKey = "identity"

// Authenticator rejects requests without a verified token whose issuer and
// audience match, and stores the caller's identity in the context. It expects
// jwtauth.Verifier to run first.
func Authenticator(issuer *security.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				if errors.Is(err, jwtauth.ErrNoTokenFound) {
					common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
				} else {
					common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
				}
				return
			}
			if token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			identity, err := issuer.IdentityFromClaims(jwt.MapClaims(claims))
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			ctx := context.WithValue(r.Context(), identityCtxKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the caller set by Authenticator.
func IdentityFromContext(ctx context.Context) (security.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey).(security.Identity)
	return identity, ok
}

// WithIdentity is used by tests and internal callers to fake an authenticated request.
func WithIdentity(ctx context.Context, identity security.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}
