package sandbox_cleanup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"uberdirect/pkg/logger"
)

// idleLimiterTTL - сколько живет ведро rate limiter без запросов клиента.
const idleLimiterTTL = 10 * time.Minute

// SandboxCleanup удаляет истекшие токены и котировки и забытые ведра rate limiter.
type SandboxCleanup struct {
	log          taskLogger
	tokenService TokenService
	quoteService QuoteService
	limiter      Limiter
	interval     time.Duration
}

func NewSandboxCleanup(
	log taskLogger,
	tokenService TokenService,
	quoteService QuoteService,
	limiter Limiter,
	interval time.Duration,
) *SandboxCleanup {
	return &SandboxCleanup{
		log:          log,
		tokenService: tokenService,
		quoteService: quoteService,
		limiter:      limiter,
		interval:     interval,
	}
}

func (s *SandboxCleanup) TTL() time.Duration {
	return s.interval
}

func (s *SandboxCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	tokens, tokenErr := s.tokenService.CleanupExpiredTokens(ctxWithTimeout)
	quotes, quoteErr := s.quoteService.CleanupExpiredQuotes(ctxWithTimeout)
	buckets := s.limiter.Evict(idleLimiterTTL)

	if tokens > 0 || quotes > 0 || buckets > 0 {
		s.log.With(
			logger.NewField("expired_tokens", tokens),
			logger.NewField("expired_quotes", quotes),
			logger.NewField("idle_buckets", buckets),
		).Info("sandbox cleanup")
	}

	var err error
	if tokenErr != nil {
		err = errors.Join(err, fmt.Errorf("tokens: %w", tokenErr))
	}
	if quoteErr != nil {
		err = errors.Join(err, fmt.Errorf("quotes: %w", quoteErr))
	}
	return err
}

func (s *SandboxCleanup) Info() string {
	return "sandbox cleanup"
}
