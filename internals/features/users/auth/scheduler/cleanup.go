package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Cleaner is implemented by the auth service.
type Cleaner interface {
	CleanupExpired(ctx context.Context) (int64, int64, error)
}

// StartCleanupScheduler runs the token cleanup on a standard 5-field cron expression.
// The caller stops the returned cron on shutdown.
func StartCleanupScheduler(c Cleaner, expr string) (*cron.Cron, error) {
	cr := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	_, err := cr.AddFunc(expr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		log.Info().Msg("[CLEANUP] purging expired tokens")
		if _, _, err := c.CleanupExpired(ctx); err != nil {
			log.Error().Err(err).Msg("[CLEANUP] failed")
		}
	})
	if err != nil {
		return nil, err
	}
	cr.Start()
	return cr, nil
}
