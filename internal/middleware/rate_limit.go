package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/adisatrio/mindskit/internal/config"
	"github.com/adisatrio/mindskit/internal/pkg/message"
	"github.com/adisatrio/mindskit/internal/pkg/web"
	"github.com/adisatrio/mindskit/internal/platform/cache"
)

// RateLimit limits requests per client IP using a fixed window counter in the
// cache. The limiter fails open: cache errors log a warning and let the
// request through.
func RateLimit(store cache.Cache, cfg *config.RateLimit) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("ratelimit:%s", getIPAddress(r))

			count, err := store.Incr(r.Context(), key, cfg.Window.Duration)
			if err != nil {
				slog.Warn("rate limiter unavailable", "reason", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(cfg.Max) {
				web.RespondTooManyRequests(w, errors.New("rate limit exceeded"), message.TooManyAsks)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
