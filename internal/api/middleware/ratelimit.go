package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/pos-terminal-platform/internal/errors"
	redisRepo "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories/redis"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/utils/response"
)

// RateLimit throttles a mutating endpoint per client IP using the redis
// sliding window. A redis outage fails open: a register that cannot reach
// redis must still be able to sell.
func RateLimit(repo *redisRepo.RedisRepo, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		clientIP, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			clientIP = r.RemoteAddr
		}

		allowed, _, retryAfter, err := repo.CheckRateLimit(r.Context(), clientIP)
		if err != nil {
			LoggerFromContext(r.Context()).Warn("Rate limit check failed, allowing request",
				slog.String("error", err.Error()))
			next(w, r)

			return
		}

		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			response.Error(w, appErrors.TooManyRequestsError("Too many checkout attempts, slow down"))

			return
		}

		next(w, r)
	}
}
