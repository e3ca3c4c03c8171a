package components

import "github.com/yohamta/donburi"

// SettingsData stores the runtime toggles (singleton component)
type SettingsData struct {
	Debug bool // draw collision outlines and zone boxes
	Muted bool
}

var Settings = donburi.NewComponentType[SettingsData]()
