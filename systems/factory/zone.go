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

// CreateZones marks the playfield regions the simulation cares about: the
// feeder segment that blocks spawning, the two failure strips off the belt
// ends, and the loading dock. The debug overlay draws them; the systems
// themselves test positions against the layout table.
func CreateZones(ecs *ecs.ECS, diff *cfg.DifficultyConfig) {
	lay := cfg.Layout
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)

	createZone(ecs, lay.SpawnZoneX+2, lay.BaseRowY-2, w-lay.SpawnZoneX-2, 4, tags.ResolvSpawnZone)
	createZone(ecs, 0, 0, lay.LeftFailX, h, tags.ResolvFailZone)
	createZone(ecs, lay.RightFailX, 0, w-lay.RightFailX, h, tags.ResolvFailZone)
	createZone(ecs, 0, lay.TruckY(diff.Belts)+cfg.Truck.BoxHeight, lay.BeltX-4, 4, tags.ResolvDock)
}

func createZone(ecs *ecs.ECS, x, y, w, h float64, tag string) *donburi.Entry {
	zone := archetypes.Zone.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = zone

	components.Object.SetValue(zone, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return zone
}
