package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// ConveyorData is one belt segment. Row -1 marks the feeder belt, which
// shares row 0's speed but sits apart on the right edge.
type ConveyorData struct {
	Row          int
	X, Y         float64
	Length       float64
	Dir          cfg.DirectionID
	Speed        float64
	StepInterval int // frames between movement ticks for packages on this row
}

var Conveyor = donburi.NewComponentType[ConveyorData]()
