package systems

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/fonts"
)

// SetGameOverResult fills the results screen with a finished round.
func SetGameOverResult(e *ecs.ECS, score, best int, newBest bool) {
	gameOver := GetOrCreateGameOver(e)
	gameOver.SelectedOption = components.GameOverRetry
	gameOver.FinalScore = score
	gameOver.BestScore = best
	gameOver.NewBest = newBest
	gameOver.Fade = gween.New(0, 1, cfg.GameOver.FadeDuration, ease.OutQuad)
	gameOver.FadeAlpha = 0
}

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createBeltScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		if gameOver.Fade != nil {
			v, done := gameOver.Fade.Update(1.0 / 60.0)
			gameOver.FadeAlpha = float64(v)
			if done {
				gameOver.Fade = nil
			}
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createBeltScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}

		// Shortcuts mirror the menu options
		if GetAction(input, cfg.ActionRestart).JustPressed {
			sceneChanger.ChangeScene(createBeltScene())
		}
		if GetAction(input, cfg.ActionToMenu).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
		if GetAction(input, cfg.ActionQuit).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawGameOver renders the results screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	titleFont := fonts.ArcadeTitle.Get()
	title := "GAME OVER"
	titleWidth := len(title) * 16
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	menuFont := fonts.Arcade.Get()

	score := fmt.Sprintf("SCORE %d", gameOver.FinalScore)
	text.Draw(screen, score, menuFont, int((width-float64(len(score)*8))/2), int(cfg.GameOver.ScoreY), cfg.White)

	best := fmt.Sprintf("BEST %d", gameOver.BestScore)
	bestX := int((width - float64(len(best)*8)) / 2)
	text.Draw(screen, best, menuFont, bestX, int(cfg.GameOver.BestY), cfg.White)
	if gameOver.NewBest {
		text.Draw(screen, "NEW!", menuFont, bestX+len(best)*8+8, int(cfg.GameOver.BestY), cfg.Yellow)
	}

	for i, label := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*cfg.GameOver.MenuItemHeight

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
			cursorX := int(width/2) - len(label)*4 - 16
			text.Draw(screen, ">", menuFont, cursorX, int(y), textColor)
		}

		textWidth := len(label) * 8
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, label, menuFont, x, int(y), textColor)
	}

	hint := "R RETRY  M MENU  Q QUIT"
	hintX := int((width - float64(len(hint)*8)) / 2)
	text.Draw(screen, hint, menuFont, hintX, int(cfg.GameOver.HintY), cfg.GameOver.TextColorNormal)

	// Fade the whole screen in from black
	if gameOver.FadeAlpha < 1 {
		a := uint8(255 * (1 - gameOver.FadeAlpha))
		vector.FillRect(screen, 0, 0, float32(width), float32(height), color.RGBA{A: a}, false)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
			FadeAlpha:      1,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
