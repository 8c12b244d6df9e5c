package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/strafe/frontend/terminal"
	"github.com/plus3/strafe/game"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		slog.ErrorContext(ctx, "game stopped", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	tty, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	seed := uint64(time.Now().UnixNano())
	logger.InfoContext(ctx, "starting", "seed", seed, "columns", terminal.Columns, "rows", terminal.Rows)

	screen, err := terminal.New(tty)
	if err != nil {
		return err
	}

	state := game.NewState(rand.New(rand.NewPCG(seed, seed)))
	runner := game.NewRunner(game.NewDefaultScheduler(state), screen, logger)
	return runner.Run(ctx)
}
