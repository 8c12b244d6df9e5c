package terminal_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/strafe/frontend/terminal"
	"github.com/plus3/strafe/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) (*terminal.Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := terminal.New(sim)
	require.NoError(t, err)
	sim.SetSize(terminal.Columns, terminal.Rows)
	t.Cleanup(func() { _ = screen.Close() })
	return screen, sim
}

// collect polls screen until n game events have arrived.
func collect(t *testing.T, screen *terminal.Screen, n int) []game.Event {
	t.Helper()
	var events []game.Event
	require.Eventually(t, func() bool {
		events = append(events, screen.PollEvents()...)
		return len(events) >= n
	}, time.Second, time.Millisecond)
	return events
}

func TestKeyTranslation(t *testing.T) {
	screen, sim := newSimScreen(t)

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	events := collect(t, screen, 5)
	assert.Equal(t, []game.Event{
		game.KeyDown(game.KeyFire),
		game.KeyDown(game.KeyLeft),
		game.KeyDown(game.KeyRight),
		game.Quit(),
		game.Quit(),
	}, events)
}

func TestPollEventsDoesNotBlock(t *testing.T) {
	screen, _ := newSimScreen(t)

	done := make(chan []game.Event)
	go func() { done <- screen.PollEvents() }()

	select {
	case events := <-done:
		assert.Empty(t, events)
	case <-time.After(time.Second):
		t.Fatal("PollEvents blocked with no pending input")
	}
}

func TestHoldWindow(t *testing.T) {
	screen, sim := newSimScreen(t)
	now := time.Unix(1000, 0)
	screen.Now = func() time.Time { return now }

	assert.Equal(t, game.KeySet(0), screen.PressedKeys())

	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	collect(t, screen, 1)
	assert.Equal(t, game.Keys(game.KeyLeft), screen.PressedKeys())

	now = now.Add(terminal.DefaultHoldWindow - time.Millisecond)
	assert.Equal(t, game.Keys(game.KeyLeft), screen.PressedKeys())

	now = now.Add(time.Millisecond)
	assert.Equal(t, game.KeySet(0), screen.PressedKeys(), "hold expires")

	// the opposite direction cancels the hold
	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	collect(t, screen, 2)
	assert.Equal(t, game.Keys(game.KeyRight), screen.PressedKeys())
}

func TestCellBounds(t *testing.T) {
	tests := []struct {
		name           string
		rect           game.Rect
		x0, y0, x1, y1 int
	}{
		{"player", game.Rect{X: 375, Y: 540, W: 50, H: 50}, 37, 27, 43, 30},
		{"aligned", game.Rect{X: 400, Y: 100, W: 40, H: 40}, 40, 5, 44, 7},
		{"bullet straddles a row", game.Rect{X: 395, Y: 533, W: 10, H: 20}, 39, 26, 41, 28},
		{"clipped at the top", game.Rect{X: 0, Y: -5, W: 10, H: 20}, 0, 0, 1, 1},
		{"clipped at the bottom", game.Rect{X: 790, Y: 590, W: 40, H: 40}, 79, 29, 80, 30},
		{"off screen", game.Rect{X: 100, Y: -30, W: 10, H: 20}, 10, 0, 11, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1 := terminal.CellBounds(tt.rect)
			assert.Equal(t, []int{tt.x0, tt.y0, tt.x1, tt.y1}, []int{x0, y0, x1, y1})
		})
	}
}

func TestRender(t *testing.T) {
	screen, sim := newSimScreen(t)

	screen.Clear(game.Background)
	screen.FillRect(game.Rect{X: 400, Y: 100, W: 40, H: 40}, game.EnemyColor)
	screen.FillRect(game.Rect{X: 0, Y: -5, W: 10, H: 20}, game.BulletColor)
	screen.Present()

	cells, w, h := sim.GetContents()
	require.Equal(t, terminal.Columns, w)
	require.Equal(t, terminal.Rows, h)

	background := func(x, y int) tcell.Color {
		_, bg, _ := cells[y*w+x].Style.Decompose()
		return bg
	}

	assert.Equal(t, terminal.Color(game.EnemyColor), background(40, 5))
	assert.Equal(t, terminal.Color(game.EnemyColor), background(43, 6))
	assert.Equal(t, terminal.Color(game.Background), background(44, 6))
	assert.Equal(t, terminal.Color(game.Background), background(40, 7))
	assert.Equal(t, terminal.Color(game.BulletColor), background(0, 0))
	assert.Equal(t, terminal.Color(game.Background), background(0, 1))
}

func TestCloseIsIdempotent(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := terminal.New(sim)
	require.NoError(t, err)

	require.NoError(t, screen.Close())
	require.NoError(t, screen.Close())
}
