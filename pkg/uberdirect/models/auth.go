package models

import (
	"net/url"
	"time"

	"uberdirect/pkg/uberdirect/uberr"
)

const (
	GrantTypeClientCredentials = "client_credentials"
	ScopeDeliveries            = "eats.deliveries"
)

// AuthRequest уходит на login.uber.com как application/x-www-form-urlencoded.
// Пустые GrantType и Scope отправляются как client_credentials и eats.deliveries.
type AuthRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
	GrantType    string `json:"grant_type,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

func NewAuthRequest(clientID, clientSecret string) AuthRequest {
	return AuthRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		GrantType:    GrantTypeClientCredentials,
		Scope:        ScopeDeliveries,
	}
}

// WithDefaults возвращает копию запроса с заполненными grant_type и scope.
func (r AuthRequest) WithDefaults() AuthRequest {
	if r.GrantType == "" {
		r.GrantType = GrantTypeClientCredentials
	}
	if r.Scope == "" {
		r.Scope = ScopeDeliveries
	}
	return r
}

func (r AuthRequest) Form() url.Values {
	r = r.WithDefaults()

	form := url.Values{}
	form.Set("client_id", r.ClientID)
	form.Set("client_secret", r.ClientSecret)
	form.Set("grant_type", r.GrantType)
	form.Set("scope", r.Scope)
	return form
}

// ParseAuthRequest разбирает тело формы. Пустые grant_type и scope заполняются значениями по умолчанию.
func ParseAuthRequest(body []byte) (AuthRequest, error) {
	form, err := url.ParseQuery(string(body))
	if err != nil {
		return AuthRequest{}, uberr.Wrap(uberr.KindURLEncoded, "parse auth form", err)
	}

	req := AuthRequest{
		ClientID:     form.Get("client_id"),
		ClientSecret: form.Get("client_secret"),
		GrantType:    form.Get("grant_type"),
		Scope:        form.Get("scope"),
	}
	return req.WithDefaults(), nil
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

// ExpiresAt - когда токен перестанет работать, если он был выдан в issued.
// Клиент токены не обновляет, это делает вызывающий код.
func (r AuthResponse) ExpiresAt(issued time.Time) time.Time {
	return issued.Add(time.Duration(r.ExpiresIn) * time.Second)
}
