package main

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/strafe/frontend/window"
	"github.com/plus3/strafe/game"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	seed := uint64(time.Now().UnixNano())
	state := game.NewState(rand.New(rand.NewPCG(seed, seed)))
	scheduler := game.NewDefaultScheduler(state)

	slog.Info("starting", "seed", seed)
	if err := window.Run(window.New(scheduler, nil)); err != nil {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("game stopped", "frames", scheduler.Frames(), "kills", state.Kills(), "spawned", state.SpawnCount())
}
