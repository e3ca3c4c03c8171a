package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/assets"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/fonts"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the score strip: miss icons on the left, the session best
// in the middle, the live score on the right. The difficulty name sits in
// the bottom margin.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := CurrentSession(ecs)
	if session == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	hud := cfg.HUD
	fontFace := fonts.Arcade.Get()

	// Miss icons, one per failure taken
	missIcon := assets.GetSprite(assets.SpriteMissIcon)
	for i := 0; i < session.Failures; i++ {
		hudDrawOp.GeoM.Reset()
		hudDrawOp.GeoM.Translate(hud.Margin+float64(i)*hud.MissGap, hud.MissY)
		screen.DrawImage(missIcon, hudDrawOp)
	}

	// Best score for this difficulty, centered
	best := session.HighScore
	if session.Score > best {
		best = session.Score
	}
	if best > 0 {
		hi := fmt.Sprintf("HI %d", best)
		hiX := int((width - float64(len(hi)*8)) / 2)
		text.Draw(screen, hi, fontFace, hiX, int(hud.ScoreY), cfg.PanelDark)
	}

	// Live score, right-aligned
	score := fmt.Sprintf("%d", session.Score)
	scoreX := int(width - hud.Margin - float64(len(score)*8))
	text.Draw(screen, score, fontFace, scoreX, int(hud.ScoreY), cfg.PanelDark)

	// Difficulty name in the bottom margin
	name := session.Difficulty.Name
	nameX := int((width - float64(len(name)*8)) / 2)
	text.Draw(screen, name, fontFace, nameX, int(height)-4, cfg.PanelLine)
}
