package config

// Screen Constants (matches the original 505x606 canvas)
const (
	ScreenWidth  = 505
	ScreenHeight = 606
	WindowTitle  = "Road Crosser"
)

// Board layout: 5 tile columns, 7 tile rows top to bottom
// (water, three stone lanes, three grass rows).
const (
	TileWidth  = 101
	TileHeight = 83
	BoardCols  = 5
	BoardRows  = 7
)

// Player stepping and spawn. One key release moves one tile.
const (
	PlayerStartX = 200
	PlayerStartY = 380
	PlayerStepX  = 101
	PlayerStepY  = 83
)

// Hitboxes are fixed offsets from an entity's position, independent of
// sprite dimensions.
const (
	EnemyHitboxW  = 60
	EnemyHitboxH  = 25
	PlayerHitboxW = 37
	PlayerHitboxH = 30
)

// Enemy tuning. Enemies cross left to right on the stone lanes and wrap
// back past the left edge with a fresh random speed.
const (
	EnemyMinSpeed = 80  // px/s
	EnemyMaxSpeed = 380 // px/s
	EnemyRespawnX = -101
)

// EnemyRows are the lane y positions, one enemy per stone lane. Each
// lane's hitbox band must contain a row the tile-stepped player can
// occupy (380 - n*83), or enemies could never be hit.
var EnemyRows = [...]float64{63, 146, 229}

// MaxFrameDelta bounds dt when the window was stalled (e.g. minimized), so
// a single frame never teleports enemies across the board.
const MaxFrameDelta = 0.25 // seconds
