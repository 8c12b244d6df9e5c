package game

// Key is a logical game key. Frontends map their physical keys onto these.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	default:
		return "unknown"
	}
}

// KeySet is the set of keys currently held down.
type KeySet uint8

// Keys builds a KeySet from the given keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has, With and Without test, add and remove one key.
func (s KeySet) Has(k Key) bool       { return s&(1<<k) != 0 }
func (s KeySet) With(k Key) KeySet    { return s | 1<<k }
func (s KeySet) Without(k Key) KeySet { return s &^ (1 << k) }

// EventKind tells what an Event reports.
type EventKind uint8

const (
	// EventQuit asks the game to terminate.
	EventQuit EventKind = iota + 1
	// EventKeyDown reports a key press edge.
	EventKeyDown
)

// Event is one entry of a frontend's input queue.
type Event struct {
	Kind EventKind
	Key  Key
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// KeyDown returns a key press event for k.
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }
