//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=uberdirect_test
package uberdirect

import (
	"net/http"

	"uberdirect/pkg/logger"
)

// httpDoer - *http.Client или любая обертка над ним.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type clientLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
