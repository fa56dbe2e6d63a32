package workers

import (
	"context"
	"time"

	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/internal/store"
)

// defaultCleanupInterval is used when the configured interval is not positive.
const defaultCleanupInterval = 10 * time.Minute

// codeCleanupWorker periodically nulls out expired activation and reset
// codes, so stale codes do not linger in the accounts table after their
// owners abandoned the flow.
type codeCleanupWorker struct {
	ctx      context.Context
	accounts store.AccountRepository
	interval time.Duration
	logger   *logger.Logger
}

// NewCodeCleanupWorker constructs a cleanup worker that sweeps expired codes
// every interval until ctx is cancelled.
func NewCodeCleanupWorker(ctx context.Context, accounts store.AccountRepository, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	return &codeCleanupWorker{
		ctx:      ctx,
		accounts: accounts,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It spawns the sweep loop and returns immediately.
func (w *codeCleanupWorker) Run() {
	go w.loop()
}

func (w *codeCleanupWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("expired-code cleanup worker started")

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info().Msg("expired-code cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *codeCleanupWorker) sweep() {
	affected, err := w.accounts.ClearExpiredCodes(w.ctx, time.Now())
	if err != nil {
		w.logger.Err(err).Msg("expired-code sweep failed")
		return
	}

	if affected > 0 {
		w.logger.Info().Int64("accounts", affected).Msg("cleared expired codes")
	}
}
