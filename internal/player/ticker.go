package player

import (
	"context"
	"time"
)

// PositionSource reports the current playback position in seconds.
// Implementations wrap whatever is actually playing the video.
type PositionSource interface {
	Position() int
}

// PositionFunc adapts a function to the PositionSource interface.
type PositionFunc func() int

func (f PositionFunc) Position() int { return f() }

// Hooks carries the side-effect callbacks the tick loop fires. Either
// field may be nil. Callbacks run outside the controller lock, so they
// may call back into the controller (Submit, Restart).
type Hooks struct {
	// OnQuestion fires when a question becomes due. The playback layer
	// should pause the video and present the question.
	OnQuestion func(Question)

	// OnComplete fires once when the position reaches the duration.
	OnComplete func()
}

// Run samples the position source every PollInterval and evaluates
// quiz triggers until the session completes or ctx is cancelled. This
// is the "every T seconds, sample position and evaluate" loop made
// explicit; nothing about it assumes a UI event loop.
func (c *Controller) Run(ctx context.Context, src PositionSource, hooks Hooks) error {
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if q := c.Advance(src.Position()); q != nil {
				if hooks.OnQuestion != nil {
					hooks.OnQuestion(*q)
				}
				continue
			}
			if c.State() == Completed {
				if hooks.OnComplete != nil {
					hooks.OnComplete()
				}
				return nil
			}
		}
	}
}
