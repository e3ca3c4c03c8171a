package scenes

import (
	"sync"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/systems"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LobbyScene displays the difficulty select using ebitenui
type LobbyScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	lobbyUI      *ui.LobbyUI
	lobbyData    *components.LobbyData
	once         sync.Once
	startID      cfg.DifficultyID
	shouldStart  bool
	shouldGoBack bool
}

// NewLobbyScene creates a new difficulty select scene
func NewLobbyScene(sc SceneChanger) *LobbyScene {
	return &LobbyScene{sceneChanger: sc}
}

func (ls *LobbyScene) Update() {
	ls.once.Do(ls.configure)

	// Update ECS for audio and keyboard navigation
	ls.ecs.Update()

	// Update ebitenui
	ls.lobbyUI.Update()

	// Handle transitions requested by UI clicks
	if ls.shouldStart {
		ls.sceneChanger.ChangeScene(NewBeltScene(ls.sceneChanger, ls.startID))
		return
	}
	if ls.shouldGoBack {
		ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger))
		return
	}
}

func (ls *LobbyScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ls.ecs == nil {
		return
	}

	// Draw ebitenui
	ls.lobbyUI.UI.Draw(screen)
}

func (ls *LobbyScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories for the keyboard path
	createBeltScene := func(id cfg.DifficultyID) interface{} {
		return NewBeltScene(ls.sceneChanger, id)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(ls.sceneChanger)
	}

	// Audio system
	ls.ecs.AddSystem(systems.UpdateAudio)

	// Keyboard navigation shares LobbyData with the widgets
	ls.ecs.AddSystem(systems.UpdateInput)
	ls.ecs.AddSystem(systems.NewUpdateLobby(ls.sceneChanger, createBeltScene, createMenuScene))
	ls.ecs.AddSystem(systems.UpdateSettings)

	ls.lobbyData = systems.GetOrCreateLobby(ls.ecs)

	// Create ebitenui difficulty select
	ls.lobbyUI = ui.NewLobbyUI(
		ls.lobbyData,
		func(id cfg.DifficultyID) {
			ls.startID = id
			ls.shouldStart = true
		},
		func() { ls.shouldGoBack = true },
	)
}
