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

// CreatePackage spawns a parcel at (x, y), normally the feeder mouth.
func CreatePackage(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	pkg := archetypes.Package.Spawn(ecs)

	size := cfg.Package.BoxSize
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvPackage)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = pkg // Link for O(1) lookup

	components.Object.SetValue(pkg, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	data := components.PackageData{
		State: cfg.PackageNormal,
		Dir:   cfg.DirLeft,
	}
	data.SetPos(x, y)
	components.Package.SetValue(pkg, data)

	return pkg
}
