package oauth_token_post

import (
	"errors"
	"io"
	"net/http"

	"uberdirect/internal/pkg/response"
	"uberdirect/internal/service/auth"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/uberdirect/models"
	"uberdirect/pkg/uberdirect/uberr"
)

const tokenType = "Bearer"

// Handler выдает access токен по client_credentials. Ошибки в формате OAuth сервера.
type Handler struct {
	log     handlerLogger
	service Service
	clock   Clock
}

func New(log handlerLogger, service Service, clock Clock) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		clock:   clock,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.OAuthError(w, h.log, http.StatusBadRequest, uberr.APICodeOAuthInvalidRequest, "cannot read request body")
		return
	}

	req, err := models.ParseAuthRequest(body)
	if err != nil {
		response.OAuthError(w, h.log, http.StatusBadRequest, uberr.APICodeOAuthInvalidRequest, err.Error())
		return
	}

	token, err := h.service.IssueToken(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.log.With(
		logger.NewField("client_id", token.ClientID),
		logger.NewField("expires_at", token.ExpiresAt),
	).Info("token issued")

	response.JSON(w, h.log, http.StatusOK, models.AuthResponse{
		AccessToken: token.Value,
		ExpiresIn:   int64(token.ExpiresAt.Sub(h.clock.Now()).Seconds()),
		TokenType:   tokenType,
		Scope:       token.Scope,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidRequest):
		response.OAuthError(w, h.log, http.StatusBadRequest, uberr.APICodeOAuthInvalidRequest, err.Error())
	case errors.Is(err, auth.ErrUnsupportedGrantType):
		response.OAuthError(w, h.log, http.StatusBadRequest, uberr.APICodeOAuthUnsupportedGrantType, err.Error())
	case errors.Is(err, auth.ErrInvalidScope):
		response.OAuthError(w, h.log, http.StatusBadRequest, uberr.APICodeOAuthInvalidScope, err.Error())
	case errors.Is(err, auth.ErrInvalidClient):
		response.OAuthError(w, h.log, http.StatusUnauthorized, uberr.APICodeOAuthInvalidClient, "Client authentication failed.")
	default:
		h.log.With(logger.NewField("error", err)).Error("issue token")
		response.OAuthError(w, h.log, http.StatusInternalServerError, uberr.APICodeOAuthServerError, "An unknown error occurred.")
	}
}
