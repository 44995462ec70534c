package bearer_auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"uberdirect/internal/entities"
	"uberdirect/internal/pkg/response"
	"uberdirect/internal/service/auth"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/uberdirect/uberr"
)

const bearerPrefix = "Bearer "

type tokenKey struct{}

// Middleware пропускает запрос дальше только с действующим access токеном в заголовке Authorization.
func Middleware(log handlerLogger, authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value, ok := bearerToken(r)
			if !ok {
				response.Error(w, log, http.StatusUnauthorized, uberr.APICodeUnauthorized,
					"Authorization header must carry a bearer token.")
				return
			}

			token, err := authorizer.Authorize(r.Context(), value)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthorized) {
					log.With(
						logger.NewField("path", r.URL.Path),
						logger.NewField("reason", err.Error()),
					).Debug("unauthorized request")

					response.Error(w, log, http.StatusUnauthorized, uberr.APICodeUnauthorized,
						"The access token is invalid or expired.")
					return
				}

				log.With(logger.NewField("error", err)).Error("authorize request")
				response.Error(w, log, http.StatusInternalServerError, uberr.APICodeUnknownError,
					"An unknown error occurred.")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), tokenKey{}, token)))
		})
	}
}

// TokenFromContext возвращает токен, с которым прошел запрос.
func TokenFromContext(ctx context.Context) (*entities.Token, bool) {
	token, ok := ctx.Value(tokenKey{}).(*entities.Token)
	return token, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	value := strings.TrimSpace(header[len(bearerPrefix):])
	return value, value != ""
}
