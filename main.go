package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Grzegon/FEND-ArcadeGame/internal/config"
	"github.com/Grzegon/FEND-ArcadeGame/internal/game"
)

func main() {
	// 1. Window Setup
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)

	// 2. Initialize Game
	g, err := game.New()
	if err != nil {
		log.Fatal(err)
	}

	// 3. Run Loop
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
