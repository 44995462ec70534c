package models

import (
	"net/url"
	"strconv"
)

type ListDeliveriesRequest struct {
	Filter *Status `validate:"omitempty,oneof=pending pickup pickup_complete dropoff delivered canceled returned ongoing"`
	Limit  *int    `validate:"omitempty,gt=0"`
	Offset *int    `validate:"omitempty,gte=0"`
}

// Query - параметры попадают в строку запроса только если заданы.
func (r ListDeliveriesRequest) Query() url.Values {
	q := url.Values{}
	if r.Filter != nil {
		q.Set("filter", string(*r.Filter))
	}
	if r.Limit != nil {
		q.Set("limit", strconv.Itoa(*r.Limit))
	}
	if r.Offset != nil {
		q.Set("offset", strconv.Itoa(*r.Offset))
	}
	return q
}

type ListDeliveriesResponse struct {
	Data       []DeliveryResponse `json:"data,omitempty"`
	NextHref   *string            `json:"next_href,omitempty"`
	Object     *string            `json:"object,omitempty"`
	TotalCount *int               `json:"total_count,omitempty"`
	URL        *string            `json:"url,omitempty"`
}
