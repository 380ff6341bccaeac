package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Grzegon/FEND-ArcadeGame/internal/config"
)

func TestHitboxesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		ex, ey   float64
		px, py   float64
		expected bool
	}{
		{"same position", 200, 380, 200, 380, true},
		{"enemy just left of player", 180, 380, 200, 380, true},
		{"enemy far right of player", 400, 380, 200, 380, false},
		{"player inside enemy span", 170, 380, 200, 380, true},
		{"enemy left edge touching player right", 237, 380, 200, 380, false},
		{"enemy left edge one px inside", 236, 380, 200, 380, true},
		{"player left edge touching enemy right", 140, 380, 200, 380, false},
		{"different lanes", 200, 179, 200, 380, false},
		{"vertical near miss", 200, 350, 200, 380, false},
		{"vertical graze", 200, 356, 200, 380, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := hitboxesOverlap(tt.ex, tt.ey, tt.px, tt.py)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// The player only ever stands on rows stepped up from the spawn row, so a
// lane whose hitbox band misses every such row holds enemies that can
// never be hit. Ties the configured lanes to the movement grid.
func TestEnemyLanesOverlapReachablePlayerRows(t *testing.T) {
	var playerRows []float64
	for y := float64(config.PlayerStartY); y >= 0; y -= config.PlayerStepY {
		playerRows = append(playerRows, y)
	}
	assert.NotEmpty(t, playerRows)

	for _, lane := range config.EnemyRows {
		hittable := false
		for _, py := range playerRows {
			// Perfect x alignment isolates the vertical band.
			if hitboxesOverlap(config.PlayerStartX, lane, config.PlayerStartX, py) {
				hittable = true
				break
			}
		}
		assert.True(t, hittable,
			"enemy lane y=%v overlaps none of the reachable player rows %v", lane, playerRows)
	}
}
