package uberdirect

import (
	"context"
	"net/http"

	"uberdirect/pkg/uberdirect/models"
)

// RetrieveProofOfDelivery возвращает фото, подпись или пинкод с указанной точки маршрута.
// Документ приходит в base64, см. PODRetrievalResponse.Decode.
func (c *Client) RetrieveProofOfDelivery(ctx context.Context, creds Credentials, deliveryID string, req models.PODRetrievalRequest) (*models.PODRetrievalResponse, error) {
	u, err := c.deliveryURL(creds, deliveryID, "proof-of-delivery")
	if err != nil {
		return nil, err
	}

	var resp models.PODRetrievalResponse
	err = c.execute(ctx, request{
		operation: "retrieve_proof_of_delivery",
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
