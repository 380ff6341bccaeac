package game

import "github.com/Grzegon/FEND-ArcadeGame/internal/config"

// hitboxesOverlap reports whether the enemy hitbox anchored at (ex, ey)
// intersects the player hitbox anchored at (px, py). Strict inequalities:
// hitboxes that merely touch do not collide.
func hitboxesOverlap(ex, ey, px, py float64) bool {
	return px < ex+config.EnemyHitboxW &&
		px+config.PlayerHitboxW > ex &&
		py < ey+config.EnemyHitboxH &&
		py+config.PlayerHitboxH > ey
}
