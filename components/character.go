package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// CharacterData is one of the two lifters flanking the belts. A character
// has no free coordinates; its y always derives from Side and Floor through
// the layout table.
type CharacterData struct {
	Name     string
	Side     cfg.SideID
	Floor    int // 0 is the lowest position
	MaxFloor int // one past the highest reachable floor
	State    cfg.CharacterStateID

	// Bound actions. These are swapped at creation when the difficulty
	// inverts the controls.
	UpAction   cfg.ActionID
	DownAction cfg.ActionID
}

var Character = donburi.NewComponentType[CharacterData]()
