package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"uberdirect/internal/entities"
	"uberdirect/pkg/uberdirect/models"
)

const tokenPrefix = "sbx_"

type Config struct {
	ClientID     string
	ClientSecret string
	TokenTTL     time.Duration
}

type Auth struct {
	repository Repository
	clock      Clock
	cfg        Config
}

func New(repository Repository, clock Clock, cfg Config) *Auth {
	return &Auth{
		repository: repository,
		clock:      clock,
		cfg:        cfg,
	}
}

func (a *Auth) IssueToken(ctx context.Context, req models.AuthRequest) (*entities.Token, error) {
	if err := models.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	req = req.WithDefaults()
	if req.GrantType != models.GrantTypeClientCredentials {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGrantType, req.GrantType)
	}
	if !hasScope(req.Scope, models.ScopeDeliveries) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScope, req.Scope)
	}
	if !a.validClient(req.ClientID, req.ClientSecret) {
		return nil, ErrInvalidClient
	}

	now := a.clock.Now()
	token := entities.Token{
		Value:     tokenPrefix + strings.ReplaceAll(uuid.NewString(), "-", ""),
		ClientID:  req.ClientID,
		Scope:     models.ScopeDeliveries,
		IssuedAt:  now,
		ExpiresAt: now.Add(a.cfg.TokenTTL),
	}

	if err := a.repository.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}

	return &token, nil
}

// Authorize проверяет bearer токен из заголовка запроса.
func (a *Auth) Authorize(ctx context.Context, value string) (*entities.Token, error) {
	if strings.TrimSpace(value) == "" {
		return nil, ErrUnauthorized
	}

	token, err := a.repository.Get(ctx, value)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("get token: %w", err)
	}

	if token.Expired(a.clock.Now()) {
		return nil, fmt.Errorf("%w: token expired", ErrUnauthorized)
	}

	return token, nil
}

func (a *Auth) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	deleted, err := a.repository.DeleteExpired(ctx, a.clock.Now())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}

	return deleted, nil
}

func (a *Auth) validClient(clientID, clientSecret string) bool {
	idOK := subtle.ConstantTimeCompare([]byte(clientID), []byte(a.cfg.ClientID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(clientSecret), []byte(a.cfg.ClientSecret)) == 1
	return idOK && secretOK
}

func hasScope(scopes, want string) bool {
	for _, s := range strings.Fields(scopes) {
		if s == want {
			return true
		}
	}
	return false
}
