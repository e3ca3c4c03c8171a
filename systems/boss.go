package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// TriggerBoss pops the foreman out of his doorway on a side. Retriggering
// restarts the slide and the timer.
func TriggerBoss(e *ecs.ECS, side cfg.SideID, frames int) {
	boss := getOrCreateBoss(e)
	boss.Side = side
	boss.Timer = frames
	boss.Slide = gween.New(float32(cfg.Boss.HiddenY), float32(cfg.Boss.ShownY), cfg.Boss.SlideDuration, ease.OutQuad)
}

// UpdateBoss runs the popup timer. It is not a gameplay system; it keeps
// animating through game over so the final miss finishes its slide while
// the board lingers.
func UpdateBoss(e *ecs.ECS) {
	boss := getOrCreateBoss(e)
	if boss.Timer <= 0 {
		boss.SlideY = cfg.Boss.HiddenY
		return
	}

	boss.Timer--
	if boss.Slide != nil {
		y, _ := boss.Slide.Update(1.0 / 60.0)
		boss.SlideY = float64(y)
	}
}

func getOrCreateBoss(e *ecs.ECS) *components.BossData {
	if _, ok := components.Boss.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Boss))
		components.Boss.SetValue(ent, components.BossData{
			Side:   cfg.SideLeft,
			SlideY: cfg.Boss.HiddenY,
		})
	}

	ent, _ := components.Boss.First(e.World)
	return components.Boss.Get(ent)
}
