package webhook_post

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var WebhooksReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "webhooks_received_total",
		Help: "Total number of received webhooks by kind and result",
	},
	[]string{"kind", "result"},
)
