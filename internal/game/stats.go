package game

import (
	"encoding/json"
	"os"
)

const statsFileName = "arcade_stats.json"

// Stats is the lifetime tally, persisted as JSON next to the binary.
type Stats struct {
	GamesWon         int   `json:"games_won"`
	Collisions       int   `json:"collisions"`
	TotalPlayTimeSec int64 `json:"total_play_time"`
}

// loadStats returns zero stats when the file is missing or unreadable; a
// fresh install starts from scratch.
func loadStats(path string) Stats {
	var s Stats
	if data, err := os.ReadFile(path); err == nil {
		json.Unmarshal(data, &s)
	}
	return s
}

func (s Stats) save(path string) {
	data, _ := json.MarshalIndent(s, "", "  ")
	os.WriteFile(path, data, 0644)
}
