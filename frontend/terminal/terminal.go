// Package terminal runs the game on a character terminal through tcell.
//
// The 800x600 playfield is drawn onto an 80x30 cell grid, each cell standing
// for a 10x20 pixel block. Terminals deliver key presses but not releases, so
// a movement key counts as held for HoldWindow after its last press or
// auto-repeat.
package terminal

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/strafe/game"
)

const (
	CellWidth  = 10
	CellHeight = 20
	Columns    = game.ScreenWidth / CellWidth
	Rows       = game.ScreenHeight / CellHeight

	DefaultHoldWindow = 150 * time.Millisecond

	eventBuffer = 64
)

// Screen implements game.Platform on a tcell screen.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once

	// HoldWindow is how long a movement key stays pressed after its last
	// key event.
	HoldWindow time.Duration
	// Now is the clock used for key holds.
	Now func() time.Time

	leftUntil  time.Time
	rightUntil time.Time
}

var _ game.Platform = (*Screen)(nil)

// New initialises screen and starts reading its events. The caller must call
// Close to restore the terminal.
func New(screen tcell.Screen) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	s := &Screen{
		screen:     screen,
		events:     make(chan tcell.Event, eventBuffer),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		HoldWindow: DefaultHoldWindow,
		Now:        time.Now,
	}
	go s.poll()
	return s, nil
}

// poll forwards screen events until the screen is finalised.
func (s *Screen) poll() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.stop:
			return
		}
	}
}

// PollEvents drains the pending terminal events without blocking.
func (s *Screen) PollEvents() []game.Event {
	var out []game.Event
	for {
		select {
		case ev := <-s.events:
			out = s.translate(ev, out)
		default:
			return out
		}
	}
}

func (s *Screen) translate(ev tcell.Event, out []game.Event) []game.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return append(out, game.Quit())
		case tcell.KeyLeft:
			s.leftUntil = s.Now().Add(s.HoldWindow)
			s.rightUntil = time.Time{}
			return append(out, game.KeyDown(game.KeyLeft))
		case tcell.KeyRight:
			s.rightUntil = s.Now().Add(s.HoldWindow)
			s.leftUntil = time.Time{}
			return append(out, game.KeyDown(game.KeyRight))
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				return append(out, game.KeyDown(game.KeyFire))
			}
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return out
}

// PressedKeys reports the movement keys pressed within the hold window.
func (s *Screen) PressedKeys() game.KeySet {
	now := s.Now()
	var keys game.KeySet
	if now.Before(s.leftUntil) {
		keys = keys.With(game.KeyLeft)
	}
	if now.Before(s.rightUntil) {
		keys = keys.With(game.KeyRight)
	}
	return keys
}

// Clear resets the terminal and paints the playfield in c.
func (s *Screen) Clear(c color.RGBA) {
	s.screen.Clear()
	s.fill(0, 0, Columns, Rows, c)
}

// FillRect paints every cell r touches, clipped to the playfield and the
// terminal.
func (s *Screen) FillRect(r game.Rect, c color.RGBA) {
	x0, y0, x1, y1 := CellBounds(r)
	s.fill(x0, y0, x1, y1, c)
}

func (s *Screen) Present() { s.screen.Show() }

// Close finalises the screen and waits for the event reader to exit. It is
// safe to call more than once.
func (s *Screen) Close() error {
	s.once.Do(func() {
		close(s.stop)
		s.screen.Fini()
		<-s.done
	})
	return nil
}

func (s *Screen) fill(x0, y0, x1, y1 int, c color.RGBA) {
	w, h := s.screen.Size()
	x1, y1 = min(x1, w), min(y1, h)
	style := tcell.StyleDefault.Background(Color(c))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// CellBounds returns the half-open cell range [x0,x1)x[y0,y1) covering r,
// clipped to the Columns x Rows grid. An empty range means r is off screen.
func CellBounds(r game.Rect) (x0, y0, x1, y1 int) {
	x0 = max(0, floorDiv(r.Left(), CellWidth))
	y0 = max(0, floorDiv(r.Top(), CellHeight))
	x1 = min(Columns, ceilDiv(r.Right(), CellWidth))
	y1 = min(Rows, ceilDiv(r.Bottom(), CellHeight))
	return x0, y0, max(x0, x1), max(y0, y1)
}

// Color converts c to a tcell true colour.
func Color(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
