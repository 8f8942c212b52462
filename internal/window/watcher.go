package window

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mhdasif123/SipandSnack/internal/clock"
)

// Watcher polls the policy and logs open/close transitions. The window is a
// time-of-day rule with no event to push on, so a periodic re-check is the
// freshness mechanism.
type Watcher struct {
	policy   Policy
	clock    clock.Clock
	interval time.Duration
	logger   *zap.Logger
}

func NewWatcher(policy Policy, clk clock.Clock, interval time.Duration, logger *zap.Logger) *Watcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Watcher{policy: policy, clock: clk, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, logging the initial state and each time
// the window flips.
func (w *Watcher) Run(ctx context.Context) {
	last := w.policy.Evaluate(w.clock.Now())
	w.log(last)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st := w.policy.Evaluate(w.clock.Now())
			if st.Open != last.Open {
				w.log(st)
			}
			last = st
		}
	}
}

func (w *Watcher) log(st Status) {
	if st.Open {
		w.logger.Info("order window open", zap.String("message", st.Message))
		return
	}
	w.logger.Info("order window closed", zap.String("message", st.Message))
}
