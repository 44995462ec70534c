package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler - readiness проба. После SIGTERM отвечает 503, чтобы балансировщик снял трафик до Shutdown.
type Handler struct {
	draining *atomic.Bool
}

func New(draining *atomic.Bool) *Handler {
	return &Handler{
		draining: draining,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	if h.draining.Load() {
		w.Header().Set("Connection", "close")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
