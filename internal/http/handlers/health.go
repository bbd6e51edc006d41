package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/rs/zerolog"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHealthHandler reports up while Postgres answers a ping, 503 otherwise.
func NewHealthHandler(db Pinger, logger zerolog.Logger) http.Handler {
	checker := health.NewChecker(
		health.WithCacheDuration(1*time.Second),
		health.WithTimeout(3*time.Second),
		health.WithCheck(health.Check{
			Name:    "postgres",
			Timeout: 2 * time.Second,
			Check:   db.Ping,
			StatusListener: func(ctx context.Context, name string, state health.CheckState) {
				logger.Info().Str("check", name).Str("state", string(state.Status)).Msg("health check status changed")
			},
		}),
	)
	return health.NewHandler(checker)
}
