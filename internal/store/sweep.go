package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunSweeper evicts games idle for longer than ttl, checking every interval,
// until ctx is cancelled.
func RunSweeper(ctx context.Context, st Store, ttl, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := st.Sweep(ctx, now.Add(-ttl)); n > 0 {
				log.Info().Int("evicted", n).Int("live", st.Len()).Msg("swept idle games")
			}
		}
	}
}
