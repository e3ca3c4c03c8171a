package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/systems"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BeltScene runs one round on the conveyor floor
type BeltScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	difficulty   cfg.DifficultyID
	once         sync.Once
}

// NewBeltScene creates a gameplay scene for the given difficulty
func NewBeltScene(sc SceneChanger, difficulty cfg.DifficultyID) *BeltScene {
	return &BeltScene{sceneChanger: sc, difficulty: difficulty}
}

func (bs *BeltScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()

	// The round hands off to the results screen once the linger timer runs out
	if session := systems.CurrentSession(bs.ecs); session != nil && session.GameOver && session.LingerFrames <= 0 {
		bs.sceneChanger.ChangeScene(NewGameOverScene(
			bs.sceneChanger,
			bs.difficulty,
			session.Score,
			session.HighScore,
			session.NewBest,
		))
	}
}

func (bs *BeltScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BeltScene) configure() {
	// Preload effects to avoid lag on the first catch
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdateBeltControls(
		bs.sceneChanger,
		func() interface{} { return NewBeltScene(bs.sceneChanger, bs.difficulty) },
		func() interface{} { return NewMenuScene(bs.sceneChanger) },
	))
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Belt systems freeze while paused. Each one checks the session state
	// itself, so the game over linger still counts down here.
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCharacters))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePackages))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateTruck))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSession))

	// The foreman animates even during the game over linger
	ecs.AddSystem(systems.UpdateBoss)
	ecs.AddSystem(systems.UpdateObjects)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawPlayfield)
	ecs.AddRenderer(cfg.Default, systems.DrawTruck)
	ecs.AddRenderer(cfg.Default, systems.DrawPackages)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawBoss)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	bs.ecs = ecs

	diff := &cfg.Difficulties[bs.difficulty]

	// Create the collision space first so the factories can register into it
	factory.CreateSpace(bs.ecs, cfg.C.Width, cfg.C.Height, 16, 16)

	// Playfield entities
	factory.CreateConveyors(bs.ecs, diff)
	factory.CreateZones(bs.ecs, diff)
	factory.CreateCharacters(bs.ecs, diff)
	factory.CreateTruck(bs.ecs, diff)
	factory.CreateBoss(bs.ecs)

	// Round state seeded with the stored best for this difficulty
	factory.CreateSession(bs.ecs, diff, systems.BestScore(diff))

	// The opening package is already riding the feeder
	factory.CreatePackage(bs.ecs, cfg.Layout.SpawnX, cfg.Layout.BaseRowY)
}
