//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=oauth_token_post_test
package oauth_token_post

import (
	"context"
	"time"

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
	IssueToken(ctx context.Context, req models.AuthRequest) (*entities.Token, error)
}

type Clock interface {
	Now() time.Time
}
