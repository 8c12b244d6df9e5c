package game_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/plus3/strafe/game"
	"github.com/plus3/strafe/game/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRunner(t *testing.T, platform game.Platform, interval time.Duration) (*game.Runner, *game.Scheduler) {
	t.Helper()
	scheduler := game.NewDefaultScheduler(game.NewState(neverSpawn{}))
	runner := game.NewRunner(scheduler, platform, slog.New(slog.DiscardHandler))
	runner.Interval = interval
	return runner, scheduler
}

func TestRunnerQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)
	runner, scheduler := newTestRunner(t, platform, time.Millisecond)
	player := scheduler.State().Player

	gomock.InOrder(
		platform.EXPECT().PollEvents().Return(nil),
		platform.EXPECT().PressedKeys().Return(game.KeySet(0)),
		platform.EXPECT().Clear(game.Background),
		platform.EXPECT().FillRect(player, game.PlayerColor),
		platform.EXPECT().Present(),
		platform.EXPECT().PollEvents().Return([]game.Event{game.Quit()}),
		platform.EXPECT().PressedKeys().Return(game.KeySet(0)),
		platform.EXPECT().Close().Return(nil),
	)

	require.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, game.Terminated, scheduler.State().Status())
	assert.Equal(t, uint64(2), scheduler.Frames())
}

func TestRunnerDrawsEveryEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)
	runner, scheduler := newTestRunner(t, platform, time.Millisecond)

	gomock.InOrder(
		platform.EXPECT().PollEvents().Return([]game.Event{game.KeyDown(game.KeyFire)}),
		platform.EXPECT().PressedKeys().Return(game.Keys(game.KeyRight)),
		platform.EXPECT().Clear(game.Background),
		platform.EXPECT().FillRect(game.Rect{X: 380, Y: 540, W: 50, H: 50}, game.PlayerColor),
		platform.EXPECT().FillRect(game.Rect{X: 395, Y: 533, W: 10, H: 20}, game.BulletColor),
		platform.EXPECT().Present(),
		platform.EXPECT().PollEvents().Return([]game.Event{game.Quit()}),
		platform.EXPECT().PressedKeys().Return(game.KeySet(0)),
		platform.EXPECT().Close().Return(nil),
	)

	require.NoError(t, runner.Run(context.Background()))
	assert.Len(t, scheduler.State().Bullets, 1)
}

func TestRunnerCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)
	runner, scheduler := newTestRunner(t, platform, time.Hour)

	platform.EXPECT().PollEvents().Return(nil)
	platform.EXPECT().PressedKeys().Return(game.KeySet(0))
	platform.EXPECT().Clear(gomock.Any())
	platform.EXPECT().FillRect(gomock.Any(), gomock.Any())
	platform.EXPECT().Present()
	platform.EXPECT().Close().Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, runner.Run(ctx))
	assert.Equal(t, game.Terminated, scheduler.State().Status())
	assert.Equal(t, uint64(1), scheduler.Frames())
}

func TestRunnerCloseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)
	runner, _ := newTestRunner(t, platform, time.Millisecond)
	errClose := errors.New("screen gone")

	platform.EXPECT().PollEvents().Return([]game.Event{game.Quit()})
	platform.EXPECT().PressedKeys().Return(game.KeySet(0))
	platform.EXPECT().Close().Return(errClose)

	err := runner.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errClose)
	assert.Contains(t, err.Error(), "close platform")
}
