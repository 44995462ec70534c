package token

import (
	"context"
	"sync"
	"time"

	"uberdirect/internal/entities"
	"uberdirect/internal/service/auth"
)

type Repository struct {
	mu     sync.RWMutex
	tokens map[string]entities.Token
}

func New() *Repository {
	return &Repository{
		tokens: make(map[string]entities.Token),
	}
}

func (r *Repository) Save(_ context.Context, token entities.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token.Value] = token
	return nil
}

func (r *Repository) Get(_ context.Context, value string) (*entities.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.tokens[value]
	if !ok {
		return nil, auth.ErrTokenNotFound
	}
	return &token, nil
}

// DeleteExpired удаляет токены, истекшие к моменту now.
func (r *Repository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for value, token := range r.tokens {
		if token.Expired(now) {
			delete(r.tokens, value)
			deleted++
		}
	}
	return deleted, nil
}
