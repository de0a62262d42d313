package middleware

import (
	"context"
	"net/http"

	"github.com/blackos-labs/agency-backoffice/internal/auth"
)

type contextKey string

const sessionClaimsKey contextKey = "sessionClaims"

// Session guards the back-office routes behind the login cookie. Requests
// without a valid session are redirected to the login page rather than
// rejected, since the guarded routes are browser pages.
func Session(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			claims, err := auth.VerifyToken(secret, cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			ctx := context.WithValue(r.Context(), sessionClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionClaimsFromContext returns the login claims if the request passed
// the session gate.
func SessionClaimsFromContext(ctx context.Context) (*auth.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionClaimsKey).(*auth.SessionClaims)
	return claims, ok
}
