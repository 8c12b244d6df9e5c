package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/strafe/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	var s Stats
	s.Finalize()
	assert.Zero(t, s.Avg)

	s.Add(3 * time.Millisecond)
	s.Add(1 * time.Millisecond)
	s.Add(5 * time.Millisecond)
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)
}

func TestReportGenerate(t *testing.T) {
	scheduler := game.NewDefaultScheduler(game.NewState(rand.New(rand.NewPCG(7, 7))))
	for range 30 {
		scheduler.Once(nil, 0)
	}

	report := &Report{
		Duration:  time.Second,
		Seed:      7,
		FireEvery: 8,
		Frames:    scheduler.Frames(),
		Scheduler: scheduler.GetStats(),
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Strafe Soak Report")
	assert.Contains(t, out, "- **Seed:** 7")
	assert.Contains(t, out, "- **Frames:** 30")
	assert.Contains(t, out, "| CollisionSystem | 30 |")
	assert.NotContains(t, out, "GC Pause")
}

func TestAutopilot(t *testing.T) {
	pilot := NewAutopilot(rand.New(rand.NewPCG(1, 2)), 4)

	fired := 0
	for i := range 200 {
		events, keys := pilot.Next()
		assert.False(t, keys.Has(game.KeyFire))
		assert.False(t, keys.Has(game.KeyLeft) && keys.Has(game.KeyRight))
		if len(events) > 0 {
			assert.Equal(t, []game.Event{game.KeyDown(game.KeyFire)}, events)
			assert.Zero(t, i%4, "frame %d", i)
			fired++
		}
	}
	assert.Equal(t, 50, fired)

	silent := NewAutopilot(rand.New(rand.NewPCG(1, 2)), 0)
	for range 20 {
		events, _ := silent.Next()
		assert.Empty(t, events)
	}
}
