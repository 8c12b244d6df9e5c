// Package window runs the game in a desktop window through ebiten.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/strafe/game"
)

const Title = "Strafe"

// Overlay is drawn on top of the playfield, such as a debug UI. BeginFrame
// and EndFrame bracket each update. While CapturesKeyboard is true the game
// receives no key input.
type Overlay interface {
	BeginFrame()
	EndFrame()
	CapturesKeyboard() bool
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Game implements ebiten.Game around a Scheduler. Each ebiten tick runs one
// frame.
type Game struct {
	scheduler *game.Scheduler
	overlay   Overlay

	events []game.Event
	draw   []game.DrawCmd
}

// keyEvents maps keys to the event sent on the tick they go down.
var keyEvents = []struct {
	key   ebiten.Key
	event game.Event
}{
	{ebiten.KeyEscape, game.Quit()},
	{ebiten.KeySpace, game.KeyDown(game.KeyFire)},
	{ebiten.KeyArrowLeft, game.KeyDown(game.KeyLeft)},
	{ebiten.KeyArrowRight, game.KeyDown(game.KeyRight)},
}

var _ ebiten.Game = (*Game)(nil)

// New creates a window game. overlay may be nil.
func New(scheduler *game.Scheduler, overlay Overlay) *Game {
	return &Game{scheduler: scheduler, overlay: overlay}
}

// Run opens the window and blocks until the game quits.
func Run(g *Game) error {
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(game.FrameRate)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if g.overlay != nil {
		g.overlay.BeginFrame()
	}

	keys := g.readInput(ebiten.IsWindowBeingClosed(), inpututil.IsKeyJustPressed, ebiten.IsKeyPressed)
	frame := g.scheduler.Once(g.events, keys)

	if g.overlay != nil {
		g.overlay.EndFrame()
	}

	if frame.Terminated() {
		return ebiten.Termination
	}
	return nil
}

// readInput fills g.events for this tick and returns the held movement keys.
// A closing window always quits, even while the overlay has the keyboard.
func (g *Game) readInput(closing bool, justPressed, pressed func(ebiten.Key) bool) game.KeySet {
	g.events = g.events[:0]
	if closing {
		g.events = append(g.events, game.Quit())
	}
	if g.overlay != nil && g.overlay.CapturesKeyboard() {
		return 0
	}

	for _, k := range keyEvents {
		if justPressed(k.key) {
			g.events = append(g.events, k.event)
		}
	}

	var keys game.KeySet
	if pressed(ebiten.KeyArrowLeft) {
		keys = keys.With(game.KeyLeft)
	}
	if pressed(ebiten.KeyArrowRight) {
		keys = keys.With(game.KeyRight)
	}
	return keys
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(game.Background)

	g.draw = g.scheduler.State().DrawList(g.draw[:0])
	for _, cmd := range g.draw {
		r := cmd.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cmd.Color, false)
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(game.ScreenWidth, game.ScreenHeight)
	}
	return game.ScreenWidth, game.ScreenHeight
}
