package middleware

import (
	"intent-chatbot/config"
	"intent-chatbot/pkg/log"
)

type Middleware struct {
	l       log.Logger
	session config.SessionConfig
	limiter *rateLimiter
}

func New(l log.Logger, session config.SessionConfig, rl config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:       l,
		session: session,
	}
	if rl.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rl.RequestsPerMin, rl.Burst, rl.MaxClients)
	}
	return mw
}
