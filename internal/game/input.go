package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Grzegon/FEND-ArcadeGame/internal/entity"
)

// inputState is one frame's worth of input, read once at the top of Update
// so the rest of the loop never touches the keyboard directly.
type inputState struct {
	enter bool             // Enter went down this frame
	move  entity.Direction // arrow released this frame, DirNone otherwise
	quit  bool
}

// readInput polls the keyboard. Enter is edge-triggered on key down, so a
// held key yields exactly one transition. Movement fires on key release,
// matching the original game's key-up handling.
func readInput() inputState {
	in := inputState{
		enter: inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		quit: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	switch {
	case inpututil.IsKeyJustReleased(ebiten.KeyArrowUp):
		in.move = entity.DirUp
	case inpututil.IsKeyJustReleased(ebiten.KeyArrowDown):
		in.move = entity.DirDown
	case inpututil.IsKeyJustReleased(ebiten.KeyArrowLeft):
		in.move = entity.DirLeft
	case inpututil.IsKeyJustReleased(ebiten.KeyArrowRight):
		in.move = entity.DirRight
	}
	return in
}
