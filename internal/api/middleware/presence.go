package middleware

import (
	"context"
	"net/http"
)

type PresenceRecorder interface {
	Touch(ctx context.Context, userID string)
}

// TrackPresence marks the authenticated caller as online. Must run after Authenticator.
func TrackPresence(recorder PresenceRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity, ok := IdentityFromContext(r.Context()); ok {
				recorder.Touch(r.Context(), identity.UserID)
			}
			next.ServeHTTP(w, r)
		})
	}
}
