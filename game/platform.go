package game

import "image/color"

//go:generate go tool mockgen -destination=./mocks/platform_mock.go -package=mocks . Platform

// DrawCmd is one filled rectangle of a frame's draw list.
type DrawCmd struct {
	Rect  Rect
	Color color.RGBA
}

// Platform is the drawing and input surface a Runner drives. PollEvents must
// not block.
type Platform interface {
	PollEvents() []Event
	PressedKeys() KeySet
	Clear(c color.RGBA)
	FillRect(r Rect, c color.RGBA)
	Present()
	Close() error
}
