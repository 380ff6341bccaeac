package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/Grzegon/FEND-ArcadeGame/internal/config"
)

var (
	colOverlayDim = color.RGBA{0x00, 0x00, 0x00, 0x96}
	colTitleText  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colAccentText = color.RGBA{0xff, 0xd7, 0x4d, 0xff}
)

// overlay draws the menu text panels on top of the board.
type overlay struct {
	title text.Face
	body  text.Face
}

func newOverlay() (*overlay, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	titleFace, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size: 42, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	bodyFace, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size: 20, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return &overlay{
		title: text.NewGoXFace(titleFace),
		body:  text.NewGoXFace(bodyFace),
	}, nil
}

// drawCentered draws one line horizontally centered at the given y.
func (o *overlay) drawCentered(screen *ebiten.Image, face text.Face, msg string, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScreenWidth/2, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, op)
}

func (o *overlay) dimPanel(screen *ebiten.Image, y, h float32) {
	vector.DrawFilledRect(screen, 30, y, config.ScreenWidth-60, h, colOverlayDim, false)
}

func (o *overlay) drawTitle(screen *ebiten.Image, stats Stats) {
	o.dimPanel(screen, 140, 280)
	o.drawCentered(screen, o.title, "ROAD CROSSER", 170, colTitleText)
	o.drawCentered(screen, o.body, "Reach the water without getting hit", 250, colTitleText)
	o.drawCentered(screen, o.body, "Arrow keys move, one tile at a time", 280, colTitleText)
	o.drawCentered(screen, o.body, "Press ENTER to start", 330, colAccentText)

	tally := fmt.Sprintf("Crossings: %d   Hits: %d", stats.GamesWon, stats.Collisions)
	o.drawCentered(screen, o.body, tally, 380, colTitleText)
}

func (o *overlay) drawGameOver(screen *ebiten.Image) {
	o.dimPanel(screen, 170, 200)
	o.drawCentered(screen, o.title, "YOU MADE IT!", 210, colAccentText)
	o.drawCentered(screen, o.body, "Press ENTER to play again", 300, colTitleText)
}
