//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bearer_auth_test
package bearer_auth

import (
	"context"

	"uberdirect/internal/entities"
	"uberdirect/pkg/logger"
)

type Authorizer interface {
	Authorize(ctx context.Context, value string) (*entities.Token, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
