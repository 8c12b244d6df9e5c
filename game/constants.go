package game

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	PlayerSize    = 50
	PlayerSpeed   = 5
	PlayerOffsetY = 60

	BulletWidth  = 10
	BulletHeight = 20
	BulletSpeed  = 7

	EnemySize  = 40
	EnemySpeed = 2

	// SpawnChance is the denominator of the per-frame enemy spawn probability.
	SpawnChance = 50

	FrameRate = 60
)

// FrameInterval is the wall-clock budget of one frame at FrameRate.
const FrameInterval = time.Second / FrameRate

var (
	Background  = color.RGBA{0, 0, 0, 255}
	PlayerColor = color.RGBA{255, 255, 255, 255}
	BulletColor = color.RGBA{255, 0, 0, 255}
	EnemyColor  = color.RGBA{255, 255, 255, 255}
)
