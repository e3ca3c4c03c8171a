package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// BossData is the foreman popup shown after a dropped package or when the
// truck gets back. Singleton; retriggering restarts the slide.
type BossData struct {
	Side   cfg.SideID
	Timer  int // visible frames remaining, 0 = hidden
	Slide  *gween.Tween
	SlideY float64 // current drawn y, driven by Slide
}

var Boss = donburi.NewComponentType[BossData]()
