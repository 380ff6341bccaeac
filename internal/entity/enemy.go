package entity

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Grzegon/FEND-ArcadeGame/internal/config"
)

// Enemy is a horizontal mover. It crosses its lane left to right at a
// fixed speed, then wraps back past the left edge with a fresh one.
type Enemy struct {
	X, Y  float64
	Speed float64 // px/s

	sprite *ebiten.Image
}

func NewEnemy(x, y float64, sprite *ebiten.Image) *Enemy {
	return &Enemy{
		X:      x,
		Y:      y,
		Speed:  randSpeed(),
		sprite: sprite,
	}
}

func randSpeed() float64 {
	return config.EnemyMinSpeed + rand.Float64()*(config.EnemyMaxSpeed-config.EnemyMinSpeed)
}

// Update advances the enemy by Speed*dt seconds worth of movement.
func (e *Enemy) Update(dt float64) {
	e.X += e.Speed * dt
	if e.X > config.ScreenWidth {
		e.X = config.EnemyRespawnX
		e.Speed = randSpeed()
	}
}

func (e *Enemy) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(e.X, e.Y)
	screen.DrawImage(e.sprite, op)
}
