package tags

import "github.com/yohamta/donburi"

var (
	Package   = donburi.NewTag().SetName("Package")
	Character = donburi.NewTag().SetName("Character")
	Truck     = donburi.NewTag().SetName("Truck")
	Conveyor  = donburi.NewTag().SetName("Conveyor")
	Boss      = donburi.NewTag().SetName("Boss")
	Zone      = donburi.NewTag().SetName("Zone")
)

// Resolv tags for the collision space
const (
	ResolvPackage   = "package"
	ResolvCharacter = "character"
	ResolvTruck     = "truck"
	ResolvBelt      = "belt"
	ResolvSpawnZone = "spawnzone"
	ResolvFailZone  = "failzone"
	ResolvDock      = "dock"
)
