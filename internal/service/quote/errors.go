package quote

import "errors"

var (
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidParams     = errors.New("invalid params")

	ErrQuoteNotFound = errors.New("quote not found")
	ErrQuoteExpired  = errors.New("quote expired")
	ErrQuoteUsed     = errors.New("quote already used")
)
