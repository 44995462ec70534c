package uberdirect

import (
	"context"
	"net/http"

	"uberdirect/pkg/uberdirect/models"
	"uberdirect/pkg/uberdirect/uberr"
)

func (c *Client) CreateDelivery(ctx context.Context, creds Credentials, req models.CreateDeliveryRequest) (*models.CreateDeliveryResponse, error) {
	u, err := c.customerURL(creds, "deliveries")
	if err != nil {
		return nil, err
	}

	var resp models.CreateDeliveryResponse
	err = c.execute(ctx, request{
		operation: "create_delivery",
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

func (c *Client) GetDelivery(ctx context.Context, creds Credentials, deliveryID string) (*models.GetDeliveryResponse, error) {
	u, err := c.deliveryURL(creds, deliveryID)
	if err != nil {
		return nil, err
	}

	var resp models.GetDeliveryResponse
	err = c.execute(ctx, request{
		operation: "get_delivery",
		method:    http.MethodGet,
		url:       u,
		token:     creds.AccessToken,
		out:       &resp,
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// UpdateDelivery отправляет только заполненные поля req. Допустимость правки
// для текущего статуса проверяет сервер.
func (c *Client) UpdateDelivery(ctx context.Context, creds Credentials, deliveryID string, req models.UpdateDeliveryRequest) (*models.UpdateDeliveryResponse, error) {
	u, err := c.deliveryURL(creds, deliveryID)
	if err != nil {
		return nil, err
	}

	var resp models.UpdateDeliveryResponse
	err = c.execute(ctx, request{
		operation: "update_delivery",
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

func (c *Client) CancelDelivery(ctx context.Context, creds Credentials, deliveryID string) (*models.CancelDeliveryResponse, error) {
	u, err := c.deliveryURL(creds, deliveryID, "cancel")
	if err != nil {
		return nil, err
	}

	var resp models.CancelDeliveryResponse
	err = c.execute(ctx, request{
		operation: "cancel_delivery",
		method:    http.MethodPost,
		url:       u,
		token:     creds.AccessToken,
		out:       &resp,
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) ListDeliveries(ctx context.Context, creds Credentials, req models.ListDeliveriesRequest) (*models.ListDeliveriesResponse, error) {
	u, err := c.customerURL(creds, "deliveries")
	if err != nil {
		return nil, err
	}
	if q := req.Query(); len(q) > 0 {
		u += "?" + q.Encode()
	}

	var resp models.ListDeliveriesResponse
	err = c.execute(ctx, request{
		operation: "list_deliveries",
		method:    http.MethodGet,
		url:       u,
		token:     creds.AccessToken,
		input:     req,
		out:       &resp,
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) deliveryURL(creds Credentials, deliveryID string, tail ...string) (string, error) {
	if deliveryID == "" {
		return "", uberr.New(uberr.KindBadInput, "delivery id is required")
	}
	return c.customerURL(creds, append([]string{"deliveries", deliveryID}, tail...)...)
}
