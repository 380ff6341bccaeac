package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Grzegon/FEND-ArcadeGame/internal/config"
)

// Direction of a single player step.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// DirDelta returns the unit grid delta for d.
func DirDelta(d Direction) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Player is the crossing character. Movement is event-driven, one tile per
// key release; it never scales with frame time.
type Player struct {
	X, Y   float64
	sprite *ebiten.Image
}

func NewPlayer(sprite *ebiten.Image) *Player {
	return &Player{
		X:      config.PlayerStartX,
		Y:      config.PlayerStartY,
		sprite: sprite,
	}
}

// Move steps one tile in d, clamped to the board edges. Upward steps may
// leave the top edge: crossing y < 0 is the win condition and is resolved
// by the loop core, not here.
func (p *Player) Move(d Direction) {
	dx, dy := DirDelta(d)
	p.X += float64(dx) * config.PlayerStepX
	p.Y += float64(dy) * config.PlayerStepY

	if p.X < 0 {
		p.X = 0
	}
	if maxX := float64(config.ScreenWidth - config.TileWidth); p.X > maxX {
		p.X = maxX
	}
	if p.Y > config.PlayerStartY {
		p.Y = config.PlayerStartY
	}
}

// Reset returns the player to the spawn tile.
func (p *Player) Reset() {
	p.X = config.PlayerStartX
	p.Y = config.PlayerStartY
}

func (p *Player) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(p.X, p.Y)
	screen.DrawImage(p.sprite, op)
}
