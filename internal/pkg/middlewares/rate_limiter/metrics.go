package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitExceededTotal - отклоненные запросы. key_source: customer, если ключом был customer_id, иначе ip.
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sandbox_rate_limit_exceeded_total",
		Help: "Requests rejected with customer_limited",
	},
	[]string{"method", "route", "key_source"},
)
