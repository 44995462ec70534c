package models

import (
	"encoding/base64"

	"uberdirect/pkg/uberdirect/uberr"
)

type PODRetrievalRequest struct {
	Waypoint Waypoint  `json:"waypoint" validate:"required,oneof=pickup dropoff return"`
	Type     ProofType `json:"type" validate:"required,oneof=picture signature pincode"`
}

type PODRetrievalResponse struct {
	// Document - изображение в base64.
	Document *string `json:"document,omitempty"`
}

func (r PODRetrievalResponse) Decode() ([]byte, error) {
	if r.Document == nil {
		return nil, nil
	}
	b, err := base64.StdEncoding.DecodeString(*r.Document)
	if err != nil {
		return nil, uberr.Wrap(uberr.KindParse, "decode proof of delivery document", err)
	}
	return b, nil
}
