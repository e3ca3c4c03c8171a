package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the results screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	difficulty   cfg.DifficultyID
	score        int
	best         int
	newBest      bool
	once         sync.Once
}

// NewGameOverScene creates a results screen for a finished round
func NewGameOverScene(sc SceneChanger, difficulty cfg.DifficultyID, score, best int, newBest bool) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		difficulty:   difficulty,
		score:        score,
		best:         best,
		newBest:      newBest,
	}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories. Retrying keeps the difficulty of the round that ended.
	createBeltScene := func() interface{} {
		return NewBeltScene(gs.sceneChanger, gs.difficulty)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	// Audio system
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for the results screen
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createBeltScene, createMenuScene))
	gs.ecs.AddSystem(systems.UpdateSettings)

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.SetGameOverResult(gs.ecs, gs.score, gs.best, gs.newBest)
}
