//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sandbox_cleanup_test
package sandbox_cleanup

import (
	"context"
	"time"

	"uberdirect/pkg/logger"
)

type TokenService interface {
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

type QuoteService interface {
	CleanupExpiredQuotes(ctx context.Context) (int64, error)
}

type Limiter interface {
	Evict(idle time.Duration) int
}

type taskLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
