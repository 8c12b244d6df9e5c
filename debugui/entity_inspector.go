package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/strafe/game"
)

// EntityDetails is what the Entity Inspector shows for one live entity.
type EntityDetails struct {
	ID   game.EntityID
	Kind EntityKind
	Rect game.Rect
	// VelocityY is the vertical distance moved per frame.
	VelocityY int
}

// LookupEntity finds a live bullet or enemy by ID.
func LookupEntity(state *game.State, id game.EntityID) (EntityDetails, bool) {
	if id == 0 {
		return EntityDetails{}, false
	}
	for _, b := range state.Bullets {
		if b.ID == id {
			return EntityDetails{ID: id, Kind: KindBullet, Rect: b.Rect, VelocityY: -game.BulletSpeed}, true
		}
	}
	for _, e := range state.Enemies {
		if e.ID == id {
			return EntityDetails{ID: id, Kind: KindEnemy, Rect: e.Rect, VelocityY: game.EnemySpeed}, true
		}
	}
	return EntityDetails{}, false
}

type EntityInspector struct{}

func NewEntityInspector() *EntityInspector {
	return &EntityInspector{}
}

func (ei *EntityInspector) Render(state *game.State, selectedID game.EntityID) {
	if !imgui.BeginV("Entity Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	details, ok := LookupEntity(state, selectedID)
	if !ok {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", details.ID))
	imgui.Text(fmt.Sprintf("Kind: %s", details.Kind))
	imgui.Separator()

	if imgui.TreeNodeStr("Rect") {
		r := details.Rect
		imgui.Text(fmt.Sprintf("Position: %d, %d", r.X, r.Y))
		imgui.Text(fmt.Sprintf("Size: %d x %d", r.W, r.H))
		imgui.Text(fmt.Sprintf("Left/Right: %d / %d", r.Left(), r.Right()))
		imgui.Text(fmt.Sprintf("Top/Bottom: %d / %d", r.Top(), r.Bottom()))
		imgui.TreePop()
	}

	imgui.Text(fmt.Sprintf("Velocity: %+d px/frame", details.VelocityY))

	imgui.End()
}
