package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/tags"
)

var (
	Package = newArchetype(
		tags.Package,
		components.Package,
		components.Object,
	)
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Object,
	)
	Truck = newArchetype(
		tags.Truck,
		components.Truck,
		components.Object,
	)
	Conveyor = newArchetype(
		tags.Conveyor,
		components.Conveyor,
		components.Object,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
	)
	Zone = newArchetype(
		tags.Zone,
		components.Object,
	)
	Session = newArchetype(
		components.Session,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
