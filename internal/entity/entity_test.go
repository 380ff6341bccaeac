package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Grzegon/FEND-ArcadeGame/internal/config"
)

func TestDirDelta(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		dx, dy int
	}{
		{"none", DirNone, 0, 0},
		{"up", DirUp, 0, -1},
		{"down", DirDown, 0, 1},
		{"left", DirLeft, -1, 0},
		{"right", DirRight, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := DirDelta(tt.dir)
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		startY float64
		dir    Direction
		wantX  float64
		wantY  float64
	}{
		{"step up", 200, 380, DirUp, 200, 380 - config.PlayerStepY},
		{"step left", 200, 380, DirLeft, 200 - config.PlayerStepX, 380},
		{"step right", 200, 380, DirRight, 200 + config.PlayerStepX, 380},
		{"clamped at left edge", 0, 380, DirLeft, 0, 380},
		{"clamped at right edge", 404, 380, DirRight, 404, 380},
		{"clamped at bottom row", 200, 380, DirDown, 200, 380},
		{"top edge is open", 200, 48, DirUp, 200, 48 - config.PlayerStepY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{X: tt.startX, Y: tt.startY}
			p.Move(tt.dir)
			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, tt.wantY, p.Y)
		})
	}
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer(nil)
	p.X, p.Y = 33, -7

	p.Reset()
	assert.Equal(t, float64(config.PlayerStartX), p.X)
	assert.Equal(t, float64(config.PlayerStartY), p.Y)
}

func TestEnemyMovesWithSpeedAndDelta(t *testing.T) {
	e := &Enemy{X: 10, Y: config.EnemyRows[0], Speed: 100}

	e.Update(0.5)
	assert.InDelta(t, 60.0, e.X, 1e-9)

	e.Update(0)
	assert.InDelta(t, 60.0, e.X, 1e-9, "zero delta must not move the enemy")
}

func TestEnemyWrapsPastRightEdge(t *testing.T) {
	e := &Enemy{X: config.ScreenWidth - 1, Y: config.EnemyRows[1], Speed: 200}

	e.Update(0.1) // carries X past the edge
	assert.Equal(t, float64(config.EnemyRespawnX), e.X)
	assert.GreaterOrEqual(t, e.Speed, float64(config.EnemyMinSpeed))
	assert.LessOrEqual(t, e.Speed, float64(config.EnemyMaxSpeed))
}

func TestNewEnemySpeedInRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		e := NewEnemy(0, config.EnemyRows[0], nil)
		assert.GreaterOrEqual(t, e.Speed, float64(config.EnemyMinSpeed))
		assert.LessOrEqual(t, e.Speed, float64(config.EnemyMaxSpeed))
	}
}
