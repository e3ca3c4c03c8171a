package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/assets"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/tags"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawPlayfield renders the LCD panel furniture: belts, the cabinet hinge,
// the delivery ledge and the boss doorways. Entities draw on top of it.
func DrawPlayfield(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.PanelLight)

	width := float32(screen.Bounds().Dx())
	lay := cfg.Layout

	// HUD strip separator
	vector.FillRect(screen, 0, 18, width, 1, cfg.PanelLine, false)

	// Boss doorways sit behind the belts
	drawDoorway(screen, bossWindowRect(cfg.SideLeft))
	drawDoorway(screen, bossWindowRect(cfg.SideRight))

	session := CurrentSession(e)

	tags.Conveyor.Each(e.World, func(entry *donburi.Entry) {
		c := components.Conveyor.Get(entry)
		drawBelt(screen, c)
	})

	if session != nil {
		belts := session.Difficulty.Belts

		// Support posts at the outer belt ends
		topY := float32(lay.BeltY(belts - 1))
		baseY := float32(lay.BeltY(0)) + 5
		vector.FillRect(screen, float32(lay.BeltX)+4, topY, 2, baseY-topY, cfg.PanelLine, false)
		vector.FillRect(screen, float32(lay.BeltX+lay.BeltLength)-6, topY, 2, baseY-topY, cfg.PanelLine, false)

		// Ledge bridging the top belt to the truck bed
		vector.FillRect(screen, 40, float32(lay.BeltY(belts-1)), float32(lay.BeltX)-40+2, 4, cfg.PanelDark, false)
	}
}

// drawBelt renders one belt span with roller notches. Main rows are split
// around the hinge; the feeder enters from the right edge in one piece.
func drawBelt(screen *ebiten.Image, c *components.ConveyorData) {
	lay := cfg.Layout
	if c.Row < 0 || c.X+c.Length <= lay.HingeX || c.X >= lay.HingeX+lay.HingeW {
		drawBeltSpan(screen, c.X, c.Y, c.Length)
		return
	}
	drawBeltSpan(screen, c.X, c.Y, lay.HingeX-c.X)
	drawBeltSpan(screen, lay.HingeX+lay.HingeW, c.Y, c.X+c.Length-lay.HingeX-lay.HingeW)
}

func drawBeltSpan(screen *ebiten.Image, x, y, length float64) {
	if length <= 0 {
		return
	}
	vector.FillRect(screen, float32(x), float32(y), float32(length), 5, cfg.PanelDark, false)
	for nx := x + 3; nx < x+length-1; nx += 8 {
		vector.FillRect(screen, float32(nx), float32(y)+1, 1, 3, cfg.PanelLight, false)
	}
}

func bossWindowRect(side cfg.SideID) image.Rectangle {
	b := cfg.Boss
	x := int(b.LeftX)
	if side == cfg.SideRight {
		x = int(b.RightX)
	}
	return image.Rect(x, int(b.ShownY), x+16, int(b.HiddenY))
}

func drawDoorway(screen *ebiten.Image, r image.Rectangle) {
	vector.FillRect(screen, float32(r.Min.X)-1, float32(r.Min.Y)-1, float32(r.Dx())+2, float32(r.Dy())+1, cfg.PanelLine, false)
	vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), cfg.PanelDark, false)
}

// DrawPackages renders every package centered on its position.
func DrawPackages(e *ecs.ECS, screen *ebiten.Image) {
	img := assets.GetSprite(assets.SpritePackage)
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	tags.Package.Each(e.World, func(entry *donburi.Entry) {
		pkg := components.Package.Get(entry)
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(pkg.Pos.X-w/2, pkg.Pos.Y-h/2)
		screen.DrawImage(img, drawOp)
	})
}

// DrawCharacters renders both lifters at their floor positions. The base
// sprites face right; the right character is mirrored to face the belts.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	lay := cfg.Layout

	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		ch := components.Character.Get(entry)

		img := assets.GetSprite(characterSprite(ch))
		w := float64(img.Bounds().Dx())
		h := float64(img.Bounds().Dy())

		x := lay.LeftCharX
		flip := false
		if ch.Side == cfg.SideRight {
			x = lay.RightCharX
			flip = true
		}

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-w/2, -h/2)
		if flip {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(x, lay.FloorY(ch.Side, ch.Floor))
		screen.DrawImage(img, drawOp)
	})
}

func characterSprite(ch *components.CharacterData) assets.SpriteName {
	if ch.Side == cfg.SideLeft {
		if ch.State == cfg.CharacterPrepared {
			return assets.SpriteLuigiBrace
		}
		return assets.SpriteLuigiIdle
	}
	if ch.State == cfg.CharacterPrepared {
		return assets.SpriteMarioBrace
	}
	return assets.SpriteMarioIdle
}

// DrawTruck renders the truck and the boxes stacked on its bed.
func DrawTruck(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Truck.First(e.World)
	if !ok {
		return
	}
	truck := components.Truck.Get(entry)

	img := assets.GetSprite(assets.SpriteTruck)
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(truck.X, truck.Y)
	screen.DrawImage(img, drawOp)

	hud := cfg.HUD
	for i := 0; i < truck.Load; i++ {
		col := float64(i % 4)
		row := float64(i / 4)
		x := truck.X + 20 + col*(hud.LoadPipW+3)
		y := truck.Y + 10 - row*(hud.LoadPipH+1)
		vector.FillRect(screen, float32(x), float32(y), float32(hud.LoadPipW), float32(hud.LoadPipH), cfg.PanelDark, false)
	}
}

// DrawBoss renders the supervisor sliding up inside his doorway. The
// doorway rect clips him, so at rest he is fully hidden.
func DrawBoss(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Boss.First(e.World)
	if !ok {
		return
	}
	boss := components.Boss.Get(entry)
	if boss.SlideY >= cfg.Boss.HiddenY {
		return
	}

	r := bossWindowRect(boss.Side)
	clip := screen.SubImage(r).(*ebiten.Image)

	img := assets.GetSprite(assets.SpriteBoss)
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(float64(r.Min.X), boss.SlideY)
	clip.DrawImage(img, drawOp)
}
