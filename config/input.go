package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone      ActionID = iota
	ActionLeftUp             // left character climbs a floor
	ActionLeftDown           // left character descends
	ActionRightUp            // right character climbs a floor
	ActionRightDown          // right character descends
	ActionPause
	ActionQuit
	ActionRestart
	ActionToMenu
	ActionDifficulty1
	ActionDifficulty2
	ActionDifficulty3
	ActionDifficulty4
	ActionToggleDebug
	ActionToggleMute
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionLeftUp: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionLeftDown: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionRightUp: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				// D-pad Up
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionRightDown: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				// D-pad Down
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyQ},
			},
			ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionToMenu: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionDifficulty1: {
				Keys: []ebiten.Key{ebiten.KeyDigit1},
			},
			ActionDifficulty2: {
				Keys: []ebiten.Key{ebiten.KeyDigit2},
			},
			ActionDifficulty3: {
				Keys: []ebiten.Key{ebiten.KeyDigit3},
			},
			ActionDifficulty4: {
				Keys: []ebiten.Key{ebiten.KeyDigit4},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionToggleMute: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				// D-pad Up
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				// D-pad Down
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
	}
}
