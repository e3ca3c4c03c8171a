package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// SessionData is the singleton round state.
type SessionData struct {
	Difficulty *cfg.DifficultyConfig

	Score     int
	Failures  int
	HighScore int // best for this difficulty at round start
	NewBest   bool

	SpawnTimer int // frames until the spawner may fire again

	GameOver     bool
	LingerFrames int // frames the final board stays visible after game over
}

var Session = donburi.NewComponentType[SessionData]()
