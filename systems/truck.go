package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// UpdateTruck drives the delivery cycle. Loading happens in the package
// handoff; this system only moves the truck between the dock and the road
// and flips its state at each end.
func UpdateTruck(e *ecs.ECS) {
	session := CurrentSession(e)
	if session == nil || session.GameOver {
		return
	}
	truck := currentTruck(e)
	if truck == nil {
		return
	}

	switch truck.State {
	case cfg.TruckDelivering:
		truck.X -= cfg.Truck.Speed
		if truck.X <= cfg.Layout.TruckOffX {
			truck.State = cfg.TruckReturning
			truck.Load = 0
		}
	case cfg.TruckReturning:
		truck.X += cfg.Truck.Speed
		if truck.X >= cfg.Layout.TruckDockX {
			truck.X = cfg.Layout.TruckDockX
			truck.State = cfg.TruckWaiting
			TriggerBoss(e, cfg.SideLeft, cfg.Boss.ReturnFrames)
			PlaySFX(e, cfg.SoundTruckReturn)
		}
	}
}

func currentTruck(e *ecs.ECS) *components.TruckData {
	entry, ok := components.Truck.First(e.World)
	if !ok {
		return nil
	}
	return components.Truck.Get(entry)
}
