package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/mthompson/stickit/internal/service"
	"github.com/mthompson/stickit/internal/session"
)

type contextKey string

const (
	SessionKey contextKey = "session"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session_id"

// Auth rejects requests without a valid session before any data is
// touched. An absent, unknown and expired token all look the same to the
// client.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			sess, ok := authService.Authenticate(cookie.Value)
			if !ok {
				log.Printf("ERROR [middleware.Auth] invalid or expired session token")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(session.Session)
	return sess, ok
}
