package auth

import (
	"net/http"

	"github.com/adisatrio/mindskit/internal/pkg/message"
	"github.com/adisatrio/mindskit/internal/pkg/security"
	"github.com/adisatrio/mindskit/internal/pkg/web"
	"github.com/adisatrio/mindskit/internal/platform/jwt"
)

// RequireToken guards a route with a bearer token check.
func RequireToken(signer jwt.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil || token == "" {
				web.RespondUnauthorized(w, err, message.InvalidClient, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidClient, nil)
				return
			}

			ctx := NewContextWithClient(r.Context(), claims.ClientID)
			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}
