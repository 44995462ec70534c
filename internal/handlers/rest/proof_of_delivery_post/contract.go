//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=proof_of_delivery_post_test
package proof_of_delivery_post

import (
	"context"

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
	ProofOfDelivery(ctx context.Context, customerID, deliveryID string, req models.PODRetrievalRequest) ([]byte, error)
}
