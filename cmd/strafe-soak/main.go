package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/strafe/game"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "How long to keep running frames.")
	seed := flag.Uint64("seed", 1, "Seed for enemy spawning and the autopilot.")
	fireEvery := flag.Int("fire-every", 8, "Fire once every N frames; 0 disables firing.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Include GC pause totals in the report.")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	state := game.NewState(rand.New(rand.NewPCG(*seed, *seed)))
	scheduler := game.NewDefaultScheduler(state)
	pilot := NewAutopilot(rand.New(rand.NewPCG(*seed, ^*seed)), *fireEvery)

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		FireEvery:      *fireEvery,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	slog.Info("running frames", "duration", *duration, "seed", *seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var draw []game.DrawCmd

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			events, keys := pilot.Next()

			updateStart := time.Now()
			frame := scheduler.Once(events, keys)
			draw = state.DrawList(draw[:0])
			report.UpdateTime.Add(time.Since(updateStart))

			report.PeakBullets = max(report.PeakBullets, len(state.Bullets))
			report.PeakEnemies = max(report.PeakEnemies, len(state.Enemies))
			report.DrawCommands += len(draw)
			if frame.Terminated() {
				break Loop
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Frames = scheduler.Frames()
	report.Kills = state.Kills()
	report.Spawned = state.SpawnCount()
	report.Scheduler = scheduler.GetStats()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	slog.Info("run finished", "frames", report.Frames, "kills", report.Kills)

	if err := report.Generate(os.Stdout); err != nil {
		slog.Error("generate report", "error", err)
		os.Exit(1)
	}
	fmt.Println()
}

// Autopilot produces input for unattended runs: it holds a random direction
// for a random stretch of frames and fires at a fixed cadence.
type Autopilot struct {
	rng       game.RNG
	fireEvery int

	frame int
	keys  game.KeySet
	hold  int
}

func NewAutopilot(rng game.RNG, fireEvery int) *Autopilot {
	return &Autopilot{rng: rng, fireEvery: fireEvery}
}

// Next returns the events and held keys for the next frame.
func (a *Autopilot) Next() ([]game.Event, game.KeySet) {
	if a.hold == 0 {
		switch a.rng.IntN(3) {
		case 0:
			a.keys = game.Keys(game.KeyLeft)
		case 1:
			a.keys = game.Keys(game.KeyRight)
		default:
			a.keys = 0
		}
		a.hold = 10 + a.rng.IntN(50)
	}
	a.hold--

	var events []game.Event
	if a.fireEvery > 0 && a.frame%a.fireEvery == 0 {
		events = append(events, game.KeyDown(game.KeyFire))
	}
	a.frame++
	return events, a.keys
}
