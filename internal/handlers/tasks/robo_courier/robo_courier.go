package robo_courier

import (
	"context"
	"time"

	"uberdirect/pkg/logger"
)

// RoboCourier на каждом тике двигает доставки с test_specifications.robo_courier_specification.mode = auto
// на один статус вперед.
type RoboCourier struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewRoboCourier(log taskLogger, service Service, interval time.Duration) *RoboCourier {
	return &RoboCourier{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *RoboCourier) TTL() time.Duration {
	return r.interval
}

func (r *RoboCourier) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	advanced, err := r.service.AdvanceRoboCouriers(ctxWithTimeout)

	if advanced > 0 {
		r.log.With(
			logger.NewField("advanced_deliveries", advanced),
		).Info("robo courier tick")
	}

	return err
}

func (r *RoboCourier) Info() string {
	return "robo courier"
}
