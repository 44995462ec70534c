package uberdirect

import (
	"context"
	"net/http"

	"uberdirect/pkg/uberdirect/models"
)

// CreateQuote рассчитывает стоимость и время доставки. ID котировки можно передать
// в CreateDeliveryRequest.QuoteID, пока она не истекла.
func (c *Client) CreateQuote(ctx context.Context, creds Credentials, req models.CreateQuoteRequest) (*models.CreateQuoteResponse, error) {
	u, err := c.customerURL(creds, "delivery_quotes")
	if err != nil {
		return nil, err
	}

	var resp models.CreateQuoteResponse
	err = c.execute(ctx, request{
		operation: "create_quote",
		method:    http.MethodPost,
		url:       u,
		token:     creds.AccessToken,
		input:     req,
		body:      req,
		out:       &resp,
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
