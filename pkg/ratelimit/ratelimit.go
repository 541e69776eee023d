package ratelimit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goldmart/pkg/auth"
	"github.com/GlebRadaev/goldmart/pkg/utils"
)

// Middleware throttles requests per user with a fixed redis window:
// at most max requests per window, counted with INCR and expired as a
// whole. Requests over the limit get 429 without reaching the engine.
type Middleware struct {
	cache  redis.Cmdable
	max    int
	window time.Duration
}

func New(cache redis.Cmdable, max int, window time.Duration) *Middleware {
	return &Middleware{
		cache:  cache,
		max:    max,
		window: window,
	}
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "rate_limit_anonymous"
		if userID, ok := r.Context().Value(auth.UserIDKey).(int); ok {
			key = fmt.Sprintf("rate_limit_%d", userID)
		}

		count, err := m.cache.Incr(r.Context(), key).Result()
		if err != nil {
			// an unavailable counter must not block trading
			zap.L().Warn("rate limit counter unavailable", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			if err := m.cache.Expire(r.Context(), key, m.window).Err(); err != nil {
				zap.L().Warn("can't set rate limit window", zap.Error(err))
			}
		}
		if count > int64(m.max) {
			utils.RespondWithError(w, http.StatusTooManyRequests,
				fmt.Sprintf("Too many requests. Please wait a moment and try again after %d seconds.", int(m.window.Seconds())))
			return
		}

		next.ServeHTTP(w, r)
	})
}
