package main

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/plus3/strafe/debugui"
	"github.com/plus3/strafe/frontend/window"
	"github.com/plus3/strafe/game"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	seed := uint64(time.Now().UnixNano())
	state := game.NewState(rand.New(rand.NewPCG(seed, seed)))
	scheduler := game.NewDefaultScheduler(state)

	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(window.Title, game.ScreenWidth, game.ScreenHeight)
	overlay := debugui.New(backend, scheduler)

	slog.Info("starting", "seed", seed, "overlay", "imgui")
	if err := window.Run(window.New(scheduler, overlay)); err != nil {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}

	stats := scheduler.GetStats()
	for _, sys := range stats.Systems {
		slog.Debug("system stats",
			"system", sys.Name,
			"runs", sys.ExecutionCount,
			"avg", sys.AvgDuration,
			"max", sys.MaxDuration,
		)
	}
	slog.Info("game stopped", "frames", stats.Frames, "kills", state.Kills(), "spawned", state.SpawnCount())
}
