package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// TruckData is the delivery truck parked under the top belt. Unlike
// packages its x goes negative while it drives off-screen.
type TruckData struct {
	X, Y       float64
	State      cfg.TruckStateID
	Load       int // packages aboard this run
	Capacity   int
	Deliveries int // completed full runs this round
}

// LoadPackage puts one package on the truck. It only counts while the truck
// is parked; a package delivered mid-departure is lost without penalty.
// Returns true when this load fills the truck and starts a delivery run.
func (t *TruckData) LoadPackage() bool {
	if t.State != cfg.TruckWaiting {
		return false
	}
	t.Load++
	if t.Load >= t.Capacity {
		t.State = cfg.TruckDelivering
		t.Deliveries++
		return true
	}
	return false
}

var Truck = donburi.NewComponentType[TruckData]()
