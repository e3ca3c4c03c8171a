package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// LobbyData stores the difficulty select state shared with the lobby UI.
type LobbyData struct {
	Selected   cfg.DifficultyID
	HighScores map[string]int // best score by difficulty name, for the cards
}

var Lobby = donburi.NewComponentType[LobbyData]()
