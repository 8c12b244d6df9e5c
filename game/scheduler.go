package game

import (
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          uint64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs the registered systems against one State, once per frame.
type Scheduler struct {
	state       *State
	systems     []System
	systemStats []*systemStatsInternal
	frames      uint64
}

// NewScheduler creates a scheduler with no systems.
func NewScheduler(state *State) *Scheduler {
	return &Scheduler{
		state:   state,
		systems: make([]System, 0),
	}
}

// NewDefaultScheduler creates a scheduler running the game's frame order:
// input, player movement, bullets, spawning, enemies, collisions.
func NewDefaultScheduler(state *State) *Scheduler {
	s := NewScheduler(state)
	s.Register(InputSystem{})
	s.Register(PlayerSystem{})
	s.Register(BulletSystem{})
	s.Register(SpawnSystem{})
	s.Register(EnemySystem{})
	s.Register(CollisionSystem{})
	return s
}

// Register appends a system to the frame order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// State returns the state the systems run against.
func (s *Scheduler) State() *State { return s.state }

// Frames returns the number of frames executed so far.
func (s *Scheduler) Frames() uint64 { return s.frames }

// Once executes one frame. Once the state is terminated no further systems
// run, including the rest of the frame that terminated it.
func (s *Scheduler) Once(events []Event, keys KeySet) *Frame {
	frame := &Frame{
		Index:  s.frames,
		Events: events,
		Keys:   keys,
		State:  s.state,
	}
	if s.state.Status() == Terminated {
		return frame
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if s.state.Status() == Terminated {
			break
		}
	}

	s.frames++
	return frame
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
