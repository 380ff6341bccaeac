package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Grzegon/FEND-ArcadeGame/internal/config"
)

// board holds the three tile sprites the background grid is built from.
type board struct {
	water *ebiten.Image
	stone *ebiten.Image
	grass *ebiten.Image
}

// rowSprite maps a row index to its tile: water on top, three stone lanes,
// grass below.
func (b board) rowSprite(row int) *ebiten.Image {
	switch {
	case row == 0:
		return b.water
	case row <= 3:
		return b.stone
	default:
		return b.grass
	}
}

// drawBoard paints the static tile grid. Every phase draws it, under the
// entities or under the menu overlays.
func (g *Game) drawBoard(screen *ebiten.Image) {
	for row := 0; row < config.BoardRows; row++ {
		sprite := g.tiles.rowSprite(row)
		for col := 0; col < config.BoardCols; col++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(col*config.TileWidth), float64(row*config.TileHeight))
			screen.DrawImage(sprite, op)
		}
	}
}
