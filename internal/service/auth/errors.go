package auth

import "errors"

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrInvalidClient        = errors.New("invalid client")
	ErrInvalidScope         = errors.New("invalid scope")
	ErrUnsupportedGrantType = errors.New("unsupported grant type")

	ErrTokenNotFound = errors.New("token not found")
	ErrUnauthorized  = errors.New("unauthorized")
)
