package systems

import (
	"os"

	"github.com/yohamta/donburi/ecs"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// NewUpdateBeltControls handles the round-level keys. Q quits at any point,
// paused or not. R and M only answer once the round is over, so a stray
// press cannot throw away a running game; they skip the linger and the
// results screen entirely.
func NewUpdateBeltControls(sceneChanger SceneChanger, createBeltScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionQuit).JustPressed {
			os.Exit(0)
		}

		session := CurrentSession(e)
		if session == nil || !session.GameOver {
			return
		}

		if GetAction(input, cfg.ActionRestart).JustPressed {
			sceneChanger.ChangeScene(createBeltScene())
			return
		}
		if GetAction(input, cfg.ActionToMenu).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}
