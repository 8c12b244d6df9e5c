package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Runner drives a Scheduler against a Platform at a fixed frame rate, for
// frontends that do not own their own game loop.
type Runner struct {
	scheduler *Scheduler
	platform  Platform
	logger    *slog.Logger

	// Interval is the frame limiter period. Defaults to FrameInterval.
	Interval time.Duration

	draw []DrawCmd
}

// NewRunner creates a runner. A nil logger means slog.Default().
func NewRunner(scheduler *Scheduler, platform Platform, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		scheduler: scheduler,
		platform:  platform,
		logger:    logger,
		Interval:  FrameInterval,
	}
}

// Run executes frames until a quit event arrives or ctx is cancelled, then
// closes the platform. A quit is a clean exit and returns nil.
func (r *Runner) Run(ctx context.Context) (err error) {
	reason := "quit"
	defer func() {
		if cerr := r.platform.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close platform: %w", cerr)
		}
		state := r.scheduler.State()
		r.logger.Info("frame loop stopped",
			"reason", reason,
			"frames", r.scheduler.Frames(),
			"kills", state.Kills(),
			"spawned", state.SpawnCount(),
		)
	}()

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		events := r.platform.PollEvents()
		frame := r.scheduler.Once(events, r.platform.PressedKeys())
		if frame.Terminated() {
			return nil
		}

		r.render()

		select {
		case <-ctx.Done():
			reason = "cancelled"
			r.scheduler.State().Terminate()
			return nil
		case <-ticker.C:
		}
	}
}

func (r *Runner) render() {
	r.platform.Clear(Background)
	r.draw = r.scheduler.State().DrawList(r.draw[:0])
	for _, cmd := range r.draw {
		r.platform.FillRect(cmd.Rect, cmd.Color)
	}
	r.platform.Present()
}
