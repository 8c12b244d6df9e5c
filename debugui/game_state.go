package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/strafe/game"
)

// GameStateSummary is the text shown in the Game State window.
func GameStateSummary(scheduler *game.Scheduler) []string {
	state := scheduler.State()
	return []string{
		fmt.Sprintf("Status: %s", state.Status()),
		fmt.Sprintf("Frame: %d", scheduler.Frames()),
		fmt.Sprintf("Player: %v", state.Player),
		fmt.Sprintf("Bullets: %d", len(state.Bullets)),
		fmt.Sprintf("Enemies: %d", len(state.Enemies)),
		fmt.Sprintf("Kills: %d", state.Kills()),
		fmt.Sprintf("Spawned: %d", state.SpawnCount()),
	}
}

func renderGameState(scheduler *game.Scheduler) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(240, 190), imgui.CondOnce)

	if !imgui.BeginV("Game State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	for i, line := range GameStateSummary(scheduler) {
		if i == 3 {
			imgui.Separator()
		}
		imgui.Text(line)
	}
	imgui.End()
}
