package game

import "fmt"

// Rect is an integer axis-aligned rectangle in screen pixels. Y grows downward.
type Rect struct {
	X, Y, W, H int
}

// Left, Right, Top, Bottom and CenterX return the edges and horizontal centre.
func (r Rect) Left() int    { return r.X }
func (r Rect) Right() int   { return r.X + r.W }
func (r Rect) Top() int     { return r.Y }
func (r Rect) Bottom() int  { return r.Y + r.H }
func (r Rect) CenterX() int { return r.X + r.W/2 }

// Overlaps reports whether r and o share a region of positive area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// EntityID identifies a bullet or enemy for the lifetime of a State.
type EntityID uint64

// Entity is a bullet or an enemy.
type Entity struct {
	ID EntityID
	Rect
}

// Hit is one bullet/enemy pair removed by a collision pass.
type Hit struct {
	Bullet Entity
	Enemy  Entity
}
