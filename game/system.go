package game

// System is one step of the frame pipeline. Systems run in registration order
// and communicate through the Frame.
type System interface {
	Execute(frame *Frame)
}

// Frame carries one frame's input to the systems and collects what they did.
type Frame struct {
	Index  uint64
	Events []Event
	Keys   KeySet
	State  *State

	Spawned        []Entity
	Hits           []Hit
	ExpiredBullets int
	ExpiredEnemies int
}

// Terminated reports whether the state was terminated by the end of the frame.
func (f *Frame) Terminated() bool {
	return f.State.Status() == Terminated
}

// InputSystem applies the frame's queued events.
type InputSystem struct{}

func (InputSystem) Execute(frame *Frame) {
	frame.State.HandleInput(frame.Events)
}

// PlayerSystem moves the player by the held keys.
type PlayerSystem struct{}

func (PlayerSystem) Execute(frame *Frame) {
	frame.State.MovePlayer(frame.Keys)
}

// BulletSystem moves bullets up and drops those off the top.
type BulletSystem struct{}

func (BulletSystem) Execute(frame *Frame) {
	frame.ExpiredBullets = frame.State.UpdateBullets()
}

// SpawnSystem may spawn one enemy and records it in the Frame.
type SpawnSystem struct{}

func (SpawnSystem) Execute(frame *Frame) {
	if enemy, ok := frame.State.MaybeSpawnEnemy(); ok {
		frame.Spawned = append(frame.Spawned, enemy)
	}
}

// EnemySystem moves enemies down and drops those past the bottom.
type EnemySystem struct{}

func (EnemySystem) Execute(frame *Frame) {
	frame.ExpiredEnemies = frame.State.UpdateEnemies()
}

// CollisionSystem removes overlapping bullet and enemy pairs.
type CollisionSystem struct{}

func (CollisionSystem) Execute(frame *Frame) {
	frame.Hits = frame.State.ResolveCollisions()
}
