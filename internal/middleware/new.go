package middleware

import (
	"golang.org/x/time/rate"

	"meeting-task-converter/pkg/log"
)

type Middleware struct {
	l           log.Logger
	environment string
	limiter     *rate.Limiter
}

// New creates the shared middleware set. rps/burst bound the processing
// endpoints, which each bill an upstream AI request.
func New(l log.Logger, environment string, rps float64, burst int) Middleware {
	return Middleware{
		l:           l,
		environment: environment,
		limiter:     rate.NewLimiter(rate.Limit(rps), burst),
	}
}
