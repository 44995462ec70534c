package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"uberdirect/internal/pkg/response"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/uberdirect/uberr"
)

// Middleware отклоняет новые запросы, когда сервер уже остановил прием трафика.
// Отвечает в формате ошибок Uber, чтобы клиент получил KindInternalServerError и мог повторить.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Connection", "close")
					w.Header().Set("Retry-After", "5")
					response.Error(w, logger.Nop(), http.StatusServiceUnavailable, uberr.APICodeServiceUnavailable,
						"Service is shutting down.")
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
