package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Grzegon/FEND-ArcadeGame/internal/assets"
	"github.com/Grzegon/FEND-ArcadeGame/internal/config"
	"github.com/Grzegon/FEND-ArcadeGame/internal/entity"
	"github.com/Grzegon/FEND-ArcadeGame/internal/sound"
)

var colBackground = color.RGBA{0x2d, 0x2d, 0x2d, 0xff}

const statsAutosaveEvery = 10 * time.Second

// Game owns the loop state: phase, frame clock, entities and stats. All
// mutation happens inside Update; nothing outside the loop touches it.
type Game struct {
	phase   Phase
	clock   FrameClock
	player  *entity.Player
	enemies []*entity.Enemy

	tiles   board
	overlay *overlay
	jingle  *sound.Chiptune

	stats     Stats
	statsPath string
	lastSave  time.Time
}

// New loads sprites, starts the audio stream and restores saved stats.
func New() (*Game, error) {
	ov, err := newOverlay()
	if err != nil {
		return nil, err
	}

	jingle, err := sound.NewChiptune(audio.NewContext(sound.SampleRate))
	if err != nil {
		return nil, err
	}

	bugSprite := assets.LoadImage("enemy-bug.png")
	enemies := make([]*entity.Enemy, 0, len(config.EnemyRows))
	for i, y := range config.EnemyRows {
		// Stagger lanes so enemies don't march in a column.
		x := float64(i*170) + config.EnemyRespawnX
		enemies = append(enemies, entity.NewEnemy(x, y, bugSprite))
	}

	return &Game{
		phase:   PhaseNewGame,
		player:  entity.NewPlayer(assets.LoadImage("char-boy.png")),
		enemies: enemies,
		tiles: board{
			water: assets.LoadImage("water-block.png"),
			stone: assets.LoadImage("stone-block.png"),
			grass: assets.LoadImage("grass-block.png"),
		},
		overlay:   ov,
		jingle:    jingle,
		stats:     loadStats(statsFileName),
		statsPath: statsFileName,
		lastSave:  time.Now(),
	}, nil
}

// Update reads input once, then dispatches on the current phase. Phase is
// read at the top, so transitions requested this frame take effect on the
// next one.
func (g *Game) Update() error {
	in := readInput()
	if in.quit {
		g.flushStats()
		return ebiten.Termination
	}
	g.autosave()
	g.step(in)
	return nil
}

// step is Update minus the keyboard and the quit path.
func (g *Game) step(in inputState) {
	switch g.phase {
	case PhaseNewGame:
		if in.enter {
			g.setPhase(PhaseInGame)
		}

	case PhaseInGame:
		dt := g.clock.Tick()
		for _, e := range g.enemies {
			e.Update(dt)
		}
		if in.move != entity.DirNone {
			g.player.Move(in.move)
		}
		g.checkCollisions()

	case PhaseGameOver:
		if in.enter {
			g.setPhase(PhaseInGame)
		}
	}
}

// setPhase is the single mutation point for phase and runs entry work
// exactly once per transition.
func (g *Game) setPhase(next Phase) {
	if next == g.phase {
		return
	}
	g.phase = next

	if next == PhaseInGame {
		g.clock.Reset()
		g.player.Reset()
	}
}

// checkCollisions resolves the frame's outcome. The win check runs first:
// reaching the far row ends the round even if an enemy shares the frame.
func (g *Game) checkCollisions() {
	if g.player.Y < 0 {
		g.player.Reset()
		g.stats.GamesWon++
		g.stats.save(g.statsPath)
		if g.jingle != nil {
			g.jingle.Win()
		}
		g.setPhase(PhaseGameOver)
		return
	}

	for _, e := range g.enemies {
		if hitboxesOverlap(e.X, e.Y, g.player.X, g.player.Y) {
			g.player.Reset()
			g.stats.Collisions++
			if g.jingle != nil {
				g.jingle.Thud()
			}
			break
		}
	}
}

func (g *Game) autosave() {
	if time.Since(g.lastSave) > statsAutosaveEvery {
		g.flushStats()
	}
}

func (g *Game) flushStats() {
	g.stats.TotalPlayTimeSec += int64(time.Since(g.lastSave).Seconds())
	g.lastSave = time.Now()
	g.stats.save(g.statsPath)
}

// Draw always clears and repaints the board first, then layers the phase's
// content. In play, enemies draw before the player so the player stays on
// top.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	g.drawBoard(screen)

	switch g.phase {
	case PhaseNewGame:
		g.overlay.drawTitle(screen, g.stats)
	case PhaseInGame:
		for _, e := range g.enemies {
			e.Draw(screen)
		}
		g.player.Draw(screen)
	case PhaseGameOver:
		g.overlay.drawGameOver(screen)
	}
}

// Layout keeps the logical surface fixed; Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
