package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/metrics"
	"pet-shop-api/internal/platform/ratelimiter"
	"pet-shop-api/internal/platform/web"
)

// RateLimit aplica un token bucket por IP del cliente; sin tokens responde 429.
// Con limiter nil no limita. m puede ser nil.
func RateLimit(l *ratelimiter.MapLimiter, m *metrics.HTTP, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			ok, wait := l.Allow(ip, time.Now())
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			if m != nil {
				m.RateLimited()
			}
			log.Warn("rate limited", map[string]any{
				"request_id": RequestIDFrom(r.Context()),
				"ip":         ip,
				"path":       r.URL.Path,
			})
			if wait > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			}
			web.Detail(w, http.StatusTooManyRequests, "too many requests")
		})
	}
}

// clientIP asume que chi RealIP ya reescribió RemoteAddr si venía detrás de un proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
