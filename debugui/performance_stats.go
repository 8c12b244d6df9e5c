package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/strafe/game"
)

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	recorded      int

	rows          []game.SystemStats
	sortColumn    int
	sortAscending bool
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		sortAscending: true,
	}
}

// Record adds one frame time, in seconds, to the rolling history.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	ps.recorded = min(ps.recorded+1, ps.historyFrames)
}

// AverageFrameTime returns the mean of the recorded frame times in
// milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.recorded)
}

func (ps *PerformanceStats) Render(stats *game.SchedulerStats) {
	if !imgui.BeginV("System Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Total Executions: %d", stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable
	if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			ps.sortColumn = int(spec.ColumnIndex())
			ps.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		for _, sys := range ps.SortedSystems(stats) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.AvgDuration)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.MinDuration)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.MaxDuration)))
		}

		imgui.EndTable()
	}

	imgui.End()
}

func (ps *PerformanceStats) RenderFrameTime() {
	if !imgui.BeginV("Frame Time", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	} else {
		imgui.Text("Avg Frame Time: -")
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	imgui.End()
}

// SortedSystems returns the per-system stats in the table's sort order.
// Column 0 keeps registration order when ascending.
func (ps *PerformanceStats) SortedSystems(stats *game.SchedulerStats) []game.SystemStats {
	ps.rows = append(ps.rows[:0], stats.Systems...)
	if ps.sortColumn == 0 && ps.sortAscending {
		return ps.rows
	}
	sort.SliceStable(ps.rows, func(i, j int) bool {
		a, b := ps.rows[i], ps.rows[j]
		if !ps.sortAscending {
			a, b = b, a
		}
		switch ps.sortColumn {
		case 1:
			return a.ExecutionCount < b.ExecutionCount
		case 2:
			return a.AvgDuration < b.AvgDuration
		case 3:
			return a.MinDuration < b.MinDuration
		case 4:
			return a.MaxDuration < b.MaxDuration
		default:
			return a.Name < b.Name
		}
	})
	return ps.rows
}

func (ps *PerformanceStats) SortBy(column int, ascending bool) {
	ps.sortColumn = column
	ps.sortAscending = ascending
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
