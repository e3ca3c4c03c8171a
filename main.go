package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	rfonts "github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/fonts"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/scenes"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Arcade, rfonts.PressStart2P_ttf)
	fonts.LoadFontWithSize(fonts.ArcadeTitle, rfonts.PressStart2P_ttf, 16)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewBeltScene(g, config.DifficultyEasy)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
