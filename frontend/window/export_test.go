package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/strafe/game"
)

func (g *Game) ReadInput(closing bool, justPressed, pressed func(ebiten.Key) bool) ([]game.Event, game.KeySet) {
	keys := g.readInput(closing, justPressed, pressed)
	return g.events, keys
}
