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

// CreateCharacters spawns both lifters on floor 0 with their key bindings,
// swapped when the difficulty inverts the controls.
func CreateCharacters(ecs *ecs.ECS, diff *cfg.DifficultyConfig) (left, right *donburi.Entry) {
	left = createCharacter(ecs, "LUIGI", cfg.SideLeft, diff)
	right = createCharacter(ecs, "MARIO", cfg.SideRight, diff)
	return left, right
}

func createCharacter(ecs *ecs.ECS, name string, side cfg.SideID, diff *cfg.DifficultyConfig) *donburi.Entry {
	ch := archetypes.Character.Spawn(ecs)
	lay := cfg.Layout

	var maxFloor int
	var up, down cfg.ActionID
	var x float64
	if side == cfg.SideLeft {
		maxFloor = lay.LeftFloors(diff.Belts)
		up, down = cfg.ActionLeftUp, cfg.ActionLeftDown
		x = lay.LeftCharX
	} else {
		maxFloor = lay.RightFloors(diff.Belts)
		up, down = cfg.ActionRightUp, cfg.ActionRightDown
		x = lay.RightCharX
	}
	if diff.InvertControls {
		up, down = down, up
	}

	w, h := cfg.Character.BoxWidth, cfg.Character.BoxHeight
	obj := resolv.NewObject(x-w/2, lay.FloorY(side, 0)-h/2, w, h, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ch

	components.Object.SetValue(ch, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Character.SetValue(ch, components.CharacterData{
		Name:       name,
		Side:       side,
		Floor:      0,
		MaxFloor:   maxFloor,
		State:      cfg.CharacterIdle,
		UpAction:   up,
		DownAction: down,
	})

	return ch
}
