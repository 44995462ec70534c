package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"uberdirect/internal/pkg/response"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/uberdirect/uberr"
)

const (
	customerIDVar = "customer_id"

	keySourceCustomer = "customer"
	keySourceIP       = "ip"
)

// Middleware ограничивает запросы по customer_id из пути.
// Для роутов без customer_id (например, /oauth/v2/token) ключом служит адрес клиента.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, source := limiterKey(r)
			if rlimiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := r.URL.Path
			route := mux.CurrentRoute(r)
			if route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					handlerPath = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", handlerPath),
				logger.NewField("key", key),
				logger.NewField("key_source", source),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath, source).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			response.Error(w, log, http.StatusTooManyRequests, uberr.APICodeCustomerLimited,
				"Rate limit exceeded. Try again later.")
		})
	}
}

func limiterKey(r *http.Request) (string, string) {
	if customerID := mux.Vars(r)[customerIDVar]; customerID != "" {
		return customerID, keySourceCustomer
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr, keySourceIP
	}
	return host, keySourceIP
}
