package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// GetOrCreateLobby returns the singleton Lobby component, creating it with
// the saved best scores for the difficulty cards.
func GetOrCreateLobby(e *ecs.ECS) *components.LobbyData {
	if _, ok := components.Lobby.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Lobby))
		components.Lobby.SetValue(ent, components.LobbyData{
			Selected:   cfg.DifficultyEasy,
			HighScores: AllBestScores(),
		})
	}

	ent, _ := components.Lobby.First(e.World)
	return components.Lobby.Get(ent)
}

// NewUpdateLobby drives the keyboard path through the difficulty select.
// The mouse path goes through the ebitenui widgets, which share LobbyData.
func NewUpdateLobby(sceneChanger SceneChanger, createBeltScene func(cfg.DifficultyID) interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		lobby := GetOrCreateLobby(e)
		input := getOrCreateInput(e)

		count := int(cfg.DifficultyCount)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			lobby.Selected = cfg.DifficultyID((int(lobby.Selected) - 1 + count) % count)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			lobby.Selected = cfg.DifficultyID((int(lobby.Selected) + 1) % count)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createBeltScene(lobby.Selected))
			return
		}

		// Digit shortcuts jump straight into a round
		for i := 0; i < count; i++ {
			if GetAction(input, cfg.ActionDifficulty1+cfg.ActionID(i)).JustPressed {
				PlaySFX(e, cfg.SoundMenuSelect)
				sceneChanger.ChangeScene(createBeltScene(cfg.DifficultyID(i)))
				return
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}
