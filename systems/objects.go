package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// UpdateObjects pushes the positions the simulation wrote this frame into
// the collision space. Component data is authoritative; the space mirrors
// it for the debug overlay and zone queries.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		syncObject(e, obj)
		obj.Update()
	}
}

func syncObject(e *donburi.Entry, obj *components.ObjectData) {
	switch {
	case e.HasComponent(components.Package):
		pkg := components.Package.Get(e)
		half := cfg.Package.BoxSize / 2
		obj.X = pkg.Pos.X - half
		obj.Y = pkg.Pos.Y - half

	case e.HasComponent(components.Character):
		ch := components.Character.Get(e)
		lay := cfg.Layout
		x := lay.LeftCharX
		if ch.Side == cfg.SideRight {
			x = lay.RightCharX
		}
		obj.X = x - cfg.Character.BoxWidth/2
		obj.Y = lay.FloorY(ch.Side, ch.Floor) - cfg.Character.BoxHeight/2

	case e.HasComponent(components.Truck):
		truck := components.Truck.Get(e)
		obj.X = truck.X
		obj.Y = truck.Y
	}
}
