package systems

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/fonts"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// The digit keys skip the lobby and drop straight into a round.
func NewUpdateMenu(sceneChanger SceneChanger, createLobbyScene func() interface{}, createBeltScene func(cfg.DifficultyID) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		for i := 0; i < int(cfg.DifficultyCount); i++ {
			if GetAction(input, cfg.ActionDifficulty1+cfg.ActionID(i)).JustPressed {
				PlaySFX(e, cfg.SoundMenuSelect)
				sceneChanger.ChangeScene(createBeltScene(cfg.DifficultyID(i)))
				return
			}
		}

		numOptions := len(cfg.Menu.MenuOptions)

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch components.MainMenuOption(menu.SelectedIndex) {
			case components.MainMenuPlay:
				sceneChanger.ChangeScene(createLobbyScene())
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			GetAction(input, cfg.ActionQuit).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	// Title and subtitle
	titleFont := fonts.ArcadeTitle.Get()
	title := "MARIO BROS."
	titleWidth := len(title) * 16
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Arcade.Get()
	subtitle := "PACKING LINE"
	subW := len(subtitle) * 8
	text.Draw(screen, subtitle, menuFont, int((width-float64(subW))/2), int(cfg.Menu.SubtitleY), cfg.White)

	// Best saved score across all difficulties
	if best := bestSavedScore(); best > 0 {
		hi := fmt.Sprintf("HI %d", best)
		text.Draw(screen, hi, menuFont, int((width-float64(len(hi)*8))/2), int(cfg.Menu.SubtitleY)+14, cfg.Yellow)
	}

	// Menu options
	for i, label := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
			cursorX := int(width/2) - len(label)*4 - 16
			text.Draw(screen, ">", menuFont, cursorX, int(y), textColor)
		}

		textWidth := len(label) * 8
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, label, menuFont, x, int(y), textColor)
	}

	// Navigation hint
	hint := "ENTER SELECT  1-4 QUICK START"
	hintWidth := len(hint) * 8
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, menuFont, hintX, int(cfg.Menu.HintY), cfg.Menu.TextColorNormal)
}

// bestSavedScore is the highest stored score over every difficulty.
func bestSavedScore() int {
	best := 0
	for _, score := range AllBestScores() {
		if score > best {
			best = score
		}
	}
	return best
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
