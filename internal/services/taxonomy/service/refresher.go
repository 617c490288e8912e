package service

import (
	"context"

	"taller/internal/platform/logger"

	"github.com/robfig/cron/v3"
)

// Invalidator is what the refresher drives
type Invalidator interface{ Invalidate() }

// Refresher drops the taxonomy cache on a cron schedule so edits made outside
// the api (direct sql, another instance) show up without a restart
type Refresher struct {
	c *cron.Cron
}

// NewRefresher parses spec ("@every 5m", "0 */6 * * *"); an empty spec returns nil
func NewRefresher(spec string, inv Invalidator, log logger.Logger) (*Refresher, error) {
	if spec == "" {
		return nil, nil
	}
	c := cron.New(cron.WithChain(cron.Recover(cronLogger{log})))
	if _, err := c.AddFunc(spec, func() {
		log.Debug().Str("schedule", spec).Msg("scheduled taxonomy refresh")
		inv.Invalidate()
	}); err != nil {
		return nil, err
	}
	return &Refresher{c: c}, nil
}

// Run starts the schedule and blocks until ctx is done; a nil Refresher just waits
func (r *Refresher) Run(ctx context.Context) {
	if r == nil {
		<-ctx.Done()
		return
	}
	r.c.Start()
	<-ctx.Done()
	<-r.c.Stop().Done()
}

// cronLogger adapts zerolog to cron.Logger
type cronLogger struct{ log logger.Logger }

func (l cronLogger) Info(msg string, kv ...any) {
	l.log.Debug().Fields(kv).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, kv ...any) {
	l.log.Error().Err(err).Fields(kv).Msg(msg)
}
