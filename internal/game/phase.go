package game

// Phase is the coarse game mode driving both update and draw dispatch.
type Phase int

const (
	PhaseNewGame Phase = iota
	PhaseInGame
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNewGame:
		return "NewGame"
	case PhaseInGame:
		return "InGame"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
