package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/archetypes"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// CreateBoss spawns the hidden foreman popup.
func CreateBoss(ecs *ecs.ECS) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)
	components.Boss.SetValue(boss, components.BossData{
		Side:   cfg.SideLeft,
		SlideY: cfg.Boss.HiddenY,
	})
	return boss
}
