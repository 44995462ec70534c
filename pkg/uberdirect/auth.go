package uberdirect

import (
	"context"
	"net/http"

	"uberdirect/pkg/uberdirect/models"
)

// Authenticate получает токен по client credentials. Токен живет ExpiresIn секунд,
// обновлять его должен вызывающий код.
func (c *Client) Authenticate(ctx context.Context, req models.AuthRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse

	err := c.execute(ctx, request{
		operation: "authenticate",
		method:    http.MethodPost,
		url:       c.authURL + "/oauth/v2/token",
		input:     req,
		form:      req.Form(),
		out:       &resp,
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
