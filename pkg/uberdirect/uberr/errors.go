// Package uberr описывает ошибки клиента Uber Direct.
//
// Любая ошибка, которую возвращает клиент, имеет тип *Error и ровно один Kind.
// Kind сам реализует error, поэтому проверка делается через errors.Is:
//
//	if errors.Is(err, uberr.KindNotFound) { ... }
package uberr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindOther Kind = iota
	KindBadInput
	KindUnauthorized
	KindForbidden
	KindInvalidState
	KindNotFound
	KindExists
	KindNotImplemented
	KindTimeout
	KindInternalServerError

	// обертки над ошибками транспорта и кодеков
	KindJSON
	KindURLEncoded
	KindTransport
	KindHeader
	KindParse
)

const (
	CodeUnauthorized        = "unauthorized"
	CodeForbidden           = "forbidden"
	CodeInvalidInput        = "invalid-input"
	CodeInvalidState        = "invalid-state"
	CodeNotFound            = "not-found"
	CodeInternalServerError = "internal-server-error"
	CodeExists              = "exists"
	CodeNotImplemented      = "not-implemented"
	CodeTimeout             = "timeout"
)

var kindNames = map[Kind]string{
	KindOther:               "other",
	KindBadInput:            "bad input",
	KindUnauthorized:        "unauthorized",
	KindForbidden:           "forbidden",
	KindInvalidState:        "invalid state",
	KindNotFound:            "not found",
	KindExists:              "exists",
	KindNotImplemented:      "not implemented",
	KindTimeout:             "timeout",
	KindInternalServerError: "internal server error",
	KindJSON:                "json",
	KindURLEncoded:          "url encoded",
	KindTransport:           "transport",
	KindHeader:              "header",
	KindParse:               "parse",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) Error() string {
	return k.String()
}

// Code возвращает текстовый код для передачи ошибки через границу сервиса.
// Обертки над транспортом и кодеками сводятся к internal-server-error.
func (k Kind) Code() string {
	switch k {
	case KindBadInput:
		return CodeInvalidInput
	case KindUnauthorized:
		return CodeUnauthorized
	case KindForbidden:
		return CodeForbidden
	case KindInvalidState:
		return CodeInvalidState
	case KindNotFound:
		return CodeNotFound
	case KindExists:
		return CodeExists
	case KindNotImplemented:
		return CodeNotImplemented
	case KindTimeout:
		return CodeTimeout
	default:
		return CodeInternalServerError
	}
}

func kindFromCode(code string) Kind {
	switch code {
	case CodeInvalidInput:
		return KindBadInput
	case CodeUnauthorized:
		return KindUnauthorized
	case CodeForbidden:
		return KindForbidden
	case CodeInvalidState:
		return KindInvalidState
	case CodeNotFound:
		return KindNotFound
	case CodeExists:
		return KindExists
	case CodeNotImplemented:
		return KindNotImplemented
	case CodeTimeout:
		return KindTimeout
	default:
		return KindInternalServerError
	}
}

// Error - единая ошибка клиента.
type Error struct {
	Kind    Kind
	Message string
	// HTTP статус ответа, 0 если до сервера не дошли.
	Status int
	// Код из тела ответа Uber, например delivery_not_found.
	APICode string
	Err     error
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// FromCode восстанавливает ошибку по текстовому коду. Неизвестный код дает internal-server-error.
func FromCode(code, msg string) *Error {
	return &Error{Kind: kindFromCode(code), Message: msg}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.APICode != "" {
		msg += " (" + e.APICode + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func (e *Error) Code() string {
	return e.Kind.Code()
}

// KindOf возвращает Kind ошибки или KindOther, если это не *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

// IsRetryable подсказывает вызывающему коду, имеет ли смысл повторить запрос.
// Сам клиент ничего не повторяет.
func IsRetryable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	switch e.Kind {
	case KindTimeout, KindTransport:
		return true
	}

	switch e.Status {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
