package game

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// RNG is the source of randomness used for enemy spawning.
// *math/rand/v2.Rand satisfies it.
type RNG interface {
	IntN(n int) int
}

// Status is the lifecycle of a State.
type Status int

const (
	Running Status = iota
	Terminated
)

func (s Status) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// State owns everything that changes from one frame to the next: the player,
// the live bullets and the live enemies. Bullets and Enemies keep insertion
// order, which decides collision tie-breaks.
type State struct {
	Player  Rect
	Bullets []Entity
	Enemies []Entity

	rng     RNG
	status  Status
	nextID  EntityID
	kills   int
	spawned int

	// scratch set of enemies hit during one collision pass
	hit *intmap.Map[EntityID, struct{}]
}

// NewState returns a running state with the player centred at the bottom of
// the screen and no bullets or enemies.
func NewState(rng RNG) *State {
	return &State{
		Player: Rect{
			X: ScreenWidth/2 - PlayerSize/2,
			Y: ScreenHeight - PlayerOffsetY,
			W: PlayerSize,
			H: PlayerSize,
		},
		rng: rng,
		hit: intmap.New[EntityID, struct{}](16),
	}
}

// Status reports whether the state is running or terminated.
func (s *State) Status() Status { return s.status }

// Terminate moves the state to Terminated. There is no way back.
func (s *State) Terminate() { s.status = Terminated }

// Kills returns the number of enemies destroyed by bullets so far.
func (s *State) Kills() int { return s.kills }

// SpawnCount returns the number of enemies spawned by MaybeSpawnEnemy.
func (s *State) SpawnCount() int { return s.spawned }

// HandleInput applies the frame's queued events. A quit event terminates the
// state and discards the rest of the queue; every fire key-down adds a bullet.
func (s *State) HandleInput(events []Event) {
	for _, ev := range events {
		if s.status == Terminated {
			return
		}
		switch ev.Kind {
		case EventQuit:
			s.Terminate()
		case EventKeyDown:
			if ev.Key == KeyFire {
				s.Fire()
			}
		}
	}
}

// Fire adds a bullet at the player's top centre.
func (s *State) Fire() Entity {
	return s.PlaceBullet(s.Player.CenterX()-BulletWidth/2, s.Player.Top())
}

// PlaceBullet adds a bullet with its top-left corner at (x, y).
func (s *State) PlaceBullet(x, y int) Entity {
	b := Entity{ID: s.newID(), Rect: Rect{X: x, Y: y, W: BulletWidth, H: BulletHeight}}
	s.Bullets = append(s.Bullets, b)
	return b
}

// PlaceEnemy adds an enemy with its top-left corner at (x, y).
func (s *State) PlaceEnemy(x, y int) Entity {
	e := Entity{ID: s.newID(), Rect: Rect{X: x, Y: y, W: EnemySize, H: EnemySize}}
	s.Enemies = append(s.Enemies, e)
	return e
}

func (s *State) newID() EntityID {
	s.nextID++
	return s.nextID
}

// MovePlayer shifts the player horizontally according to the held keys,
// keeping it entirely on screen.
func (s *State) MovePlayer(keys KeySet) {
	if keys.Has(KeyLeft) {
		s.Player.X = max(0, s.Player.X-PlayerSpeed)
	}
	if keys.Has(KeyRight) {
		s.Player.X = min(ScreenWidth-PlayerSize, s.Player.X+PlayerSpeed)
	}
}

// UpdateBullets moves every bullet up and drops the ones whose bottom edge
// has left the top of the screen. It returns the number dropped.
func (s *State) UpdateBullets() int {
	for i := range s.Bullets {
		s.Bullets[i].Y -= BulletSpeed
	}
	n := len(s.Bullets)
	s.Bullets = slices.DeleteFunc(s.Bullets, func(b Entity) bool {
		return b.Bottom() < 0
	})
	return n - len(s.Bullets)
}

// MaybeSpawnEnemy spawns one enemy with probability 1/SpawnChance, at a
// random x that keeps it fully on screen and a random y in the top half.
func (s *State) MaybeSpawnEnemy() (Entity, bool) {
	if s.rng.IntN(SpawnChance) != 0 {
		return Entity{}, false
	}
	x := s.rng.IntN(ScreenWidth - EnemySize + 1)
	y := s.rng.IntN(ScreenHeight/2 + 1)
	s.spawned++
	return s.PlaceEnemy(x, y), true
}

// UpdateEnemies moves every enemy down and drops the ones whose top edge has
// passed the bottom of the screen. It returns the number dropped.
func (s *State) UpdateEnemies() int {
	for i := range s.Enemies {
		s.Enemies[i].Y += EnemySpeed
	}
	n := len(s.Enemies)
	s.Enemies = slices.DeleteFunc(s.Enemies, func(e Entity) bool {
		return e.Top() > ScreenHeight
	})
	return n - len(s.Enemies)
}

// ResolveCollisions pairs each bullet, in order, with the first enemy it
// overlaps that no earlier bullet has claimed this pass, then removes every
// paired bullet and enemy.
func (s *State) ResolveCollisions() []Hit {
	if len(s.Bullets) == 0 || len(s.Enemies) == 0 {
		return nil
	}

	s.hit.Clear()
	var hits []Hit

	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		matched := false
		for _, e := range s.Enemies {
			if _, taken := s.hit.Get(e.ID); taken {
				continue
			}
			if b.Overlaps(e.Rect) {
				s.hit.Put(e.ID, struct{}{})
				hits = append(hits, Hit{Bullet: b, Enemy: e})
				matched = true
				break
			}
		}
		if !matched {
			kept = append(kept, b)
		}
	}
	clear(s.Bullets[len(kept):])
	s.Bullets = kept

	if len(hits) > 0 {
		s.Enemies = slices.DeleteFunc(s.Enemies, func(e Entity) bool {
			_, taken := s.hit.Get(e.ID)
			return taken
		})
	}

	s.kills += len(hits)
	return hits
}

// DrawList appends the frame's filled rectangles to dst: the player first,
// then bullets, then enemies.
func (s *State) DrawList(dst []DrawCmd) []DrawCmd {
	dst = append(dst, DrawCmd{Rect: s.Player, Color: PlayerColor})
	for _, b := range s.Bullets {
		dst = append(dst, DrawCmd{Rect: b.Rect, Color: BulletColor})
	}
	for _, e := range s.Enemies {
		dst = append(dst, DrawCmd{Rect: e.Rect, Color: EnemyColor})
	}
	return dst
}
