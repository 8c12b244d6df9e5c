// Package debugui draws a Dear ImGui overlay over the window frontend: system
// timings, a frame time chart, a game state summary, an entity browser and an
// inspector for the selected entity.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/strafe/frontend/window"
	"github.com/plus3/strafe/game"
)

const (
	historyFrames      = 120
	maxEntitiesPerPage = 50
)

// UI is a window.Overlay that renders its windows after each frame's
// systems have run.
type UI struct {
	backend   *ebitenbackend.EbitenBackend
	scheduler *game.Scheduler

	timer       *FrameTimer
	performance *PerformanceStats
	browser     *EntityBrowser
	inspector   *EntityInspector
}

var _ window.Overlay = (*UI)(nil)

// New creates the overlay. The backend's window must already be created.
func New(backend *ebitenbackend.EbitenBackend, scheduler *game.Scheduler) *UI {
	imgui.CurrentIO().SetIniFilename("")
	return &UI{
		backend:     backend,
		scheduler:   scheduler,
		timer:       NewFrameTimer(),
		performance: NewPerformanceStats(historyFrames),
		browser:     NewEntityBrowser(maxEntitiesPerPage),
		inspector:   NewEntityInspector(),
	}
}

func (u *UI) BeginFrame() {
	u.backend.BeginFrame()
	u.performance.Record(u.timer.GetDeltaTime())
}

func (u *UI) EndFrame() {
	renderGameState(u.scheduler)
	u.performance.Render(u.scheduler.GetStats())
	u.performance.RenderFrameTime()
	u.browser.Render(u.scheduler.State())
	u.inspector.Render(u.scheduler.State(), u.browser.GetSelectedEntity())
	u.backend.EndFrame()
}

// CapturesKeyboard reports whether ImGui wants keyboard input, such as while
// a text field has focus.
func (u *UI) CapturesKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

func (u *UI) Draw(screen *ebiten.Image) { u.backend.Draw(screen) }

func (u *UI) Layout(width, height int) { u.backend.Layout(width, height) }
