//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=webhook_dispatch_test
package webhook_dispatch

import (
	"context"

	"uberdirect/pkg/logger"
)

type Service interface {
	DispatchStatusEvents(ctx context.Context) (int64, error)
}

type taskLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
