//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_quotes_post_test
package delivery_quotes_post

import (
	"context"

	"uberdirect/internal/entities"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/uberdirect/models"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateQuote(ctx context.Context, customerID string, req models.CreateQuoteRequest) (*entities.Quote, error)
}
