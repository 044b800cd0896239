package server

import (
	"context"
	"log/slog"
	"time"
)

// LedgerReplayer drains queued ledger entries. Implemented by xp.Service.
type LedgerReplayer interface {
	ReplayPendingLedger(ctx context.Context) (int, error)
}

// RunLedgerReplay calls r every interval until ctx is done.
func RunLedgerReplay(ctx context.Context, r LedgerReplayer, interval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := r.ReplayPendingLedger(ctx)
			if err != nil && ctx.Err() == nil {
				log.Warn("ledger replay stopped early", "written", n, "err", err)
				continue
			}
			if n > 0 {
				log.Info("replayed queued ledger entries", "written", n)
			}
		}
	}
}
