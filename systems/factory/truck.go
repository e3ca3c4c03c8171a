package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/archetypes"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/tags"
)

// CreateTruck parks an empty truck at the dock next to the delivery row.
func CreateTruck(ecs *ecs.ECS, diff *cfg.DifficultyConfig) *donburi.Entry {
	truck := archetypes.Truck.Spawn(ecs)

	x := cfg.Layout.TruckDockX
	y := cfg.Layout.TruckY(diff.Belts)

	obj := resolv.NewObject(x, y, cfg.Truck.BoxWidth, cfg.Truck.BoxHeight, tags.ResolvTruck)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Truck.BoxWidth, cfg.Truck.BoxHeight))
	obj.Data = truck

	components.Object.SetValue(truck, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Truck.SetValue(truck, components.TruckData{
		X:        x,
		Y:        y,
		State:    cfg.TruckWaiting,
		Capacity: cfg.Truck.Capacity,
	})

	return truck
}
