package middleware

import (
	"context"
	"net/http"
	"todos/shared/constant"

	"github.com/google/uuid"
)

// Session makes sure every request carries a session id, issuing a new cookie when the
// client sent none or an unparseable one. The id is put on the request context under
// constant.ContextKeySessionID. Nothing is done when lists live in the database.
func (a *appMiddleware) Session() func(http.Handler) http.Handler {
	sessionConfig := a.config.App.Session

	return func(next http.Handler) http.Handler {
		if !a.sessionBackend() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""

			if cookie, err := r.Cookie(sessionConfig.CookieName); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = parsed.String()
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			// Reissued on every response so the cookie expiry slides with activity.
			http.SetCookie(w, &http.Cookie{
				Name:     sessionConfig.CookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   sessionConfig.TTLSeconds,
				HttpOnly: true,
				Secure:   sessionConfig.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), constant.ContextKeySessionID, sessionID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
