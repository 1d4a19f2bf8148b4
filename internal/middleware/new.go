package middleware

import (
	"career-advisor-bot/config"
	"career-advisor-bot/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	config  *config.Config
	limiter *clientRateLimiter
}

// New creates the middleware set.
func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newClientRateLimiter(cfg.Chat.RateLimitPerMin),
	}
}
