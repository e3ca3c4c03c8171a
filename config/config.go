package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every system and renderer registers on.
const Default = ecs.LayerDefault

// Config contains the core display configuration
type Config struct {
	Width       int
	Height      int
	WindowScale int
	Title       string
}

// LayoutConfig is the playfield geometry table. Every pixel threshold the
// simulation uses comes from here; belt rows, character floors, the truck
// dock and the stair gaps are all derived from these values rather than
// scattered through the systems.
type LayoutConfig struct {
	// Row grid. Row 0 is the bottom (spawn) row, rows stack upward.
	BaseRowY   float64 // y of a package riding row 0
	RowSpacing float64 // vertical distance between adjacent rows

	// Belts
	BeltX             float64 // x origin of the main belt span
	BeltLength        float64
	BeltSurfaceOffset float64 // belt top sits this far below the package y
	SpawnBeltX        float64 // short feeder belt entering from the right edge
	SpawnBeltLength   float64

	// Package spawning
	SpawnX     float64 // packages enter the feeder at this x, on row 0
	SpawnZoneX float64 // spawning is blocked while a row-0 package sits right of this

	// Package motion
	StepX      float64 // horizontal distance per movement tick
	StepFrames int     // frames between movement ticks at speed 1.0
	FallStep   float64 // per-frame drop past an unattended belt end
	LiftRise   float64 // vertical gain when a caught package transfers up
	LiftShift  float64 // horizontal nudge onto the next belt during a transfer

	// Belt-end thresholds
	LeftTransferX  float64 // left of this on the top row delivers; lower rows lift
	RightTransferX float64 // right of this lifts on the right side
	LeftCatchX     float64 // catch zone for the left character
	RightCatchX    float64 // catch zone for the right character
	CatchSlack     float64 // max vertical gap between package and catcher
	LeftFailX      float64 // past the left edge, the package is lost
	RightFailX     float64 // past the right edge, the package is lost

	// Stair gap between the two belt columns. Packages crossing the gap
	// teleport to the far landing instead of stepping through it.
	GapLeftMin, GapLeftMax, GapLeftLand    float64 // leftbound crossing
	GapRightMin, GapRightMax, GapRightLand float64 // rightbound crossing

	// Cabinet hinge drawn over the gap, splitting each belt into two spans
	HingeX float64
	HingeW float64

	// Characters
	LeftCharX   float64 // drawn x center of the left character column
	RightCharX  float64
	CharYOffset float64 // a character stands this far above its row

	// Truck
	TruckDockX   float64 // parked x while loading
	TruckOffX    float64 // fully off-screen x that flips delivering to returning
	TruckYOffset float64 // the truck bed sits this far below the delivery row
}

// RowY returns the package y for a belt row.
func (l *LayoutConfig) RowY(row int) float64 {
	return l.BaseRowY - l.RowSpacing*float64(row)
}

// RowAt maps a package y back to its row. ok is false for heights between
// rows, which happens while a dropped package is drifting down.
func (l *LayoutConfig) RowAt(y float64) (int, bool) {
	d := l.BaseRowY - y
	if d < 0 {
		return 0, false
	}
	row := int(d / l.RowSpacing)
	if float64(row)*l.RowSpacing != d {
		return 0, false
	}
	return row, true
}

// SnapRowY rounds y to the nearest row height. Used when a transfer lands a
// package slightly off the grid.
func (l *LayoutConfig) SnapRowY(y float64) float64 {
	offset := math.Mod(l.BaseRowY, l.RowSpacing)
	return math.Round((y-offset)/l.RowSpacing)*l.RowSpacing + offset
}

// DeliveryRow is the top belt row, the one the truck loads from.
func (l *LayoutConfig) DeliveryRow(belts int) int {
	return belts - 1
}

// LeftFloors returns how many lift positions the left character has. The
// left side serves the even rows, including the delivery row.
func (l *LayoutConfig) LeftFloors(belts int) int {
	return (belts + 1) / 2
}

// RightFloors returns how many lift positions the right character has.
func (l *LayoutConfig) RightFloors(belts int) int {
	return belts / 2
}

// DeliveryFloor is the left character floor that loads the truck.
func (l *LayoutConfig) DeliveryFloor(belts int) int {
	return (belts - 1) / 2
}

// LeftFloorY returns the left character y on a floor. Floor f works row 2f.
func (l *LayoutConfig) LeftFloorY(floor int) float64 {
	return l.RowY(2*floor) - l.CharYOffset
}

// RightFloorY returns the right character y on a floor. Floor f works row 2f+1.
func (l *LayoutConfig) RightFloorY(floor int) float64 {
	return l.RowY(2*floor+1) - l.CharYOffset
}

// FloorY dispatches on the character side.
func (l *LayoutConfig) FloorY(side SideID, floor int) float64 {
	if side == SideLeft {
		return l.LeftFloorY(floor)
	}
	return l.RightFloorY(floor)
}

// TruckY returns the truck's parked y for a belt count.
func (l *LayoutConfig) TruckY(belts int) float64 {
	return l.RowY(l.DeliveryRow(belts)) + l.TruckYOffset
}

// BeltY returns the drawn belt-top y for a row.
func (l *LayoutConfig) BeltY(row int) float64 {
	return l.RowY(row) + l.BeltSurfaceOffset
}

// PackageConfig contains package sizing
type PackageConfig struct {
	SpriteSize float64 // drawn square edge
	BoxSize    float64 // collision box edge, centered on the position
}

// CharacterConfig contains character sizing
type CharacterConfig struct {
	BoxWidth  float64
	BoxHeight float64
}

// SpawnConfig controls how packages enter the belts
type SpawnConfig struct {
	InitialDelay int // frames before the second package of a round
	MinDelay     int // inclusive bounds for the rearm delay after a spawn
	MaxDelay     int
	BaseCount    int // active package cap before any score bonus
}

// TruckConfig contains truck behavior values
type TruckConfig struct {
	Capacity  int     // packages per delivery run
	Speed     float64 // drive speed in px per frame
	FullBonus int     // score awarded when a run fills
	BoxWidth  float64
	BoxHeight float64
}

// SessionConfig contains round bookkeeping values
type SessionConfig struct {
	MaxFailures    int
	GameOverLinger int // frames the final board stays up before the results screen
}

// BossConfig controls the foreman popup
type BossConfig struct {
	FailureFrames int // visible frames after a dropped package
	ReturnFrames  int // visible frames when the truck gets back
	SlideDuration float32
	LeftX         float64
	RightX        float64
	HiddenY       float64
	ShownY        float64
}

// HUDConfig contains in-game overlay layout
type HUDConfig struct {
	Margin     float64
	ScoreY     float64
	MissY      float64
	MissGap    float64
	LoadPipW   float64
	LoadPipH   float64
	LoadPipGap float64
}

// MenuConfig contains title screen layout
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	SubtitleY         float64
	MenuStartY        float64
	MenuItemHeight    float64
	HintY             float64
	MenuOptions       []string
}

// GameOverConfig contains results screen layout
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ScoreY            float64
	BestY             float64
	MenuStartY        float64
	MenuItemHeight    float64
	HintY             float64
	FadeDuration      float32
	MenuOptions       []string
}

// PauseConfig contains pause overlay layout
type PauseConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	HintY        float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
}

var C *Config
var Layout LayoutConfig
var Package PackageConfig
var Character CharacterConfig
var Spawn SpawnConfig
var Truck TruckConfig
var Session SessionConfig
var Boss BossConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}

	// LCD panel palette
	PanelDark  = color.RGBA{R: 40, G: 44, B: 38, A: 255}
	PanelLight = color.RGBA{R: 126, G: 136, B: 116, A: 255}
	PanelLine  = color.RGBA{R: 62, G: 68, B: 58, A: 255}
)

func init() {
	C = &Config{
		Width:       256,
		Height:      192,
		WindowScale: 3,
		Title:       "Mario Bros: Game & Watch",
	}

	// Playfield geometry. The row grid matches the original handheld: row 0
	// at y=152 with rows every 16px, characters two rows per floor.
	Layout = LayoutConfig{
		BaseRowY:   152,
		RowSpacing: 16,

		BeltX:             62,
		BeltLength:        144,
		BeltSurfaceOffset: 4,
		SpawnBeltX:        210,
		SpawnBeltLength:   46,

		SpawnX:     230,
		SpawnZoneX: 210,

		StepX:      10,
		StepFrames: 9,
		FallStep:   5,
		LiftRise:   16,
		LiftShift:  10,

		LeftTransferX:  45,
		RightTransferX: 195,
		LeftCatchX:     65,
		RightCatchX:    175,
		CatchSlack:     3,
		LeftFailX:      15,
		RightFailX:     240,

		GapLeftMin:  118,
		GapLeftMax:  152,
		GapLeftLand: 104,

		GapRightMin:  100,
		GapRightMax:  150,
		GapRightLand: 150,

		HingeX: 120,
		HingeW: 16,

		LeftCharX:   52,
		RightCharX:  204,
		CharYOffset: 2,

		TruckDockX:   8,
		TruckOffX:    -56,
		TruckYOffset: 6,
	}

	Package = PackageConfig{
		SpriteSize: 8,
		BoxSize:    2,
	}

	Character = CharacterConfig{
		BoxWidth:  12,
		BoxHeight: 16,
	}

	Spawn = SpawnConfig{
		InitialDelay: 100,
		MinDelay:     35,
		MaxDelay:     40,
		BaseCount:    1,
	}

	Truck = TruckConfig{
		Capacity:  8,
		Speed:     2,
		FullBonus: 10,
		BoxWidth:  48,
		BoxHeight: 24,
	}

	Session = SessionConfig{
		MaxFailures:    3,
		GameOverLinger: 75,
	}

	Boss = BossConfig{
		FailureFrames: 60,
		ReturnFrames:  30,
		SlideDuration: 0.25,
		LeftX:         4,
		RightX:        236,
		HiddenY:       176,
		ShownY:        146,
	}

	HUD = HUDConfig{
		Margin:     6,
		ScoreY:     14, // text baseline
		MissY:      8,
		MissGap:    10,
		LoadPipW:   4,
		LoadPipH:   6,
		LoadPipGap: 2,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 12, G: 12, B: 20, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            44,
		SubtitleY:         66,
		MenuStartY:        104,
		MenuItemHeight:    16,
		HintY:             172,
		MenuOptions:       []string{"PLAY", "EXIT"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 12, G: 12, B: 20, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            48,
		ScoreY:            84,
		BestY:             100,
		MenuStartY:        128,
		MenuItemHeight:    16,
		HintY:             176,
		FadeDuration:      0.6,
		MenuOptions:       []string{"RETRY", "MENU"},
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   White,
		HintColor:    DarkBlue,
		TitleY:       84,
		HintY:        104,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
