package factory

import (
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/archetypes"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/tags"
)

// CreateConveyors builds the belt stack for a difficulty plus the feeder
// belt on the right edge. Even rows run left, odd rows run right. The
// feeder always matches row 0 so a fresh package keeps one cadence all the
// way to the first drop.
func CreateConveyors(ecs *ecs.ECS, diff *cfg.DifficultyConfig) []*donburi.Entry {
	lay := cfg.Layout
	speeds := rowSpeeds(diff)

	entries := make([]*donburi.Entry, 0, diff.Belts+1)
	for row := 0; row < diff.Belts; row++ {
		dir := cfg.DirLeft
		if row%2 != 0 {
			dir = cfg.DirRight
		}
		entries = append(entries, createConveyor(ecs, components.ConveyorData{
			Row:          row,
			X:            lay.BeltX,
			Y:            lay.BeltY(row),
			Length:       lay.BeltLength,
			Dir:          dir,
			Speed:        speeds[row],
			StepInterval: cfg.StepInterval(speeds[row]),
		}))
	}

	entries = append(entries, createConveyor(ecs, components.ConveyorData{
		Row:          -1,
		X:            lay.SpawnBeltX,
		Y:            lay.BeltY(0),
		Length:       lay.SpawnBeltLength,
		Dir:          cfg.DirLeft,
		Speed:        speeds[0],
		StepInterval: cfg.StepInterval(speeds[0]),
	}))

	return entries
}

func createConveyor(ecs *ecs.ECS, data components.ConveyorData) *donburi.Entry {
	belt := archetypes.Conveyor.Spawn(ecs)

	obj := resolv.NewObject(data.X, data.Y, data.Length, 4, tags.ResolvBelt)
	obj.SetShape(resolv.NewRectangle(0, 0, data.Length, 4))
	obj.Data = belt

	components.Object.SetValue(belt, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Conveyor.SetValue(belt, data)
	return belt
}

func rowSpeeds(diff *cfg.DifficultyConfig) []float64 {
	speeds := make([]float64, diff.Belts)
	for row := range speeds {
		switch {
		case diff.RandomPerBelt:
			speeds[row] = cfg.RandomSpeedChoices[rand.Intn(len(cfg.RandomSpeedChoices))]
		case row == 0:
			speeds[row] = diff.SpeedRow0
		case row%2 == 0:
			speeds[row] = diff.SpeedEven
		default:
			speeds[row] = diff.SpeedOdd
		}
	}
	return speeds
}
