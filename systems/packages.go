package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/tags"
)

// UpdatePackages advances every parcel one frame: belt steps, belt-end
// falls, lifts and the truck handoff. Movement consumes the catch flags
// derived on the previous frame, then the flags are rebuilt from where the
// characters stand now. The whole floor holds still while the truck is out
// on a delivery run, but the characters keep walking, so the catch flags
// are re-derived even on frozen frames; otherwise the first frame after
// the truck docks would lift off a catch that no longer exists.
func UpdatePackages(e *ecs.ECS) {
	session := CurrentSession(e)
	if session == nil || session.GameOver {
		return
	}

	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		components.Character.Get(entry).State = cfg.CharacterIdle
	})

	truck := currentTruck(e)
	frozen := truck != nil && truck.State != cfg.TruckWaiting

	_, leftChar := characterBySide(e, cfg.SideLeft)

	tags.Package.Each(e.World, func(entry *donburi.Entry) {
		pkg := components.Package.Get(entry)
		wasCaught := pkg.Caught

		if !frozen {
			movePackage(e, session, pkg, leftChar, truck)
		}

		pkg.Caught = false
		pkg.Holder = nil
		deriveCatch(e, entry, pkg)
		if pkg.Caught && !wasCaught {
			PlaySFX(e, cfg.SoundCatch)
		}
	})
}

// movePackage is one parcel's frame. The left belt end delivers on the top
// row when the left character is up on the delivery floor; everywhere else
// a belt end either lifts a caught package or lets it fall. The horizontal
// step fires on the belt's cadence and carries the package over the stair
// gap between the two belt columns.
func movePackage(e *ecs.ECS, session *components.SessionData, pkg *components.PackageData,
	leftChar *components.CharacterData, truck *components.TruckData) {
	lay := cfg.Layout
	diff := session.Difficulty

	if pkg.State == cfg.PackageFalling {
		pkg.State = cfg.PackageNormal
	}
	pkg.Aux++

	deliveryY := lay.RowY(lay.DeliveryRow(diff.Belts))

	if pkg.Pos.X < lay.LeftTransferX && pkg.Pos.Y == deliveryY &&
		leftChar != nil && leftChar.Floor == lay.DeliveryFloor(diff.Belts) {
		pkg.State = cfg.PackageDelivered
		if truck != nil && truck.LoadPackage() {
			session.Score += cfg.Truck.FullBonus
			every := diff.TruckElimEvery
			if every > 0 && truck.Deliveries%every == 0 && session.Failures > 0 {
				session.Failures--
			}
			PlaySFX(e, cfg.SoundTruckFull)
		} else {
			PlaySFX(e, cfg.SoundLoad)
		}
	} else if pkg.Pos.X < lay.LeftTransferX {
		if pkg.Caught {
			pkg.SetPos(pkg.Pos.X+lay.LiftShift, lay.SnapRowY(pkg.Pos.Y-lay.LiftRise))
			pkg.State = cfg.PackageFalling
			PlaySFX(e, cfg.SoundLift)
		} else if pkg.Pos.Y < lay.BaseRowY {
			pkg.SetPos(pkg.Pos.X, pkg.Pos.Y+lay.FallStep)
		}
	}

	if pkg.Pos.X > lay.RightTransferX {
		if pkg.Caught {
			pkg.SetPos(pkg.Pos.X-lay.LiftShift, lay.SnapRowY(pkg.Pos.Y-lay.LiftRise))
			pkg.State = cfg.PackageFalling
			PlaySFX(e, cfg.SoundLift)
		} else if pkg.Pos.Y < lay.BaseRowY {
			pkg.SetPos(pkg.Pos.X, pkg.Pos.Y+lay.FallStep)
		}
	}

	if pkg.Aux%stepIntervalAt(e, pkg.Pos.Y) == 0 {
		switch {
		case pkg.Dir == cfg.DirLeft && pkg.Pos.X > lay.GapLeftMin && pkg.Pos.X < lay.GapLeftMax:
			pkg.SetPos(lay.GapLeftLand, pkg.Pos.Y)
		case pkg.Dir == cfg.DirRight && pkg.Pos.X > lay.GapRightMin && pkg.Pos.X < lay.GapRightMax:
			pkg.SetPos(lay.GapRightLand, pkg.Pos.Y)
		default:
			// Even rows run left, odd rows run right. A package between
			// rows drifts right until it clears the screen.
			if row, ok := lay.RowAt(pkg.Pos.Y); ok && row%2 == 0 {
				pkg.SetPos(pkg.Pos.X-lay.StepX, pkg.Pos.Y)
				pkg.Dir = cfg.DirLeft
			} else {
				pkg.SetPos(pkg.Pos.X+lay.StepX, pkg.Pos.Y)
				pkg.Dir = cfg.DirRight
			}
		}
	}
}

// deriveCatch marks the package caught when a character stands level with
// it at a belt end, and braces that character.
func deriveCatch(e *ecs.ECS, pkgEntry *donburi.Entry, pkg *components.PackageData) {
	lay := cfg.Layout
	tags.Character.Each(e.World, func(chEntry *donburi.Entry) {
		ch := components.Character.Get(chEntry)

		inZone := pkg.Pos.X > lay.RightCatchX
		if ch.Side == cfg.SideLeft {
			inZone = pkg.Pos.X < lay.LeftCatchX
		}
		if !inZone {
			return
		}

		dy := pkg.Pos.Y - lay.FloorY(ch.Side, ch.Floor)
		if dy <= 0 || dy >= lay.CatchSlack {
			return
		}

		if !pkg.Caught {
			pkg.Caught = true
			pkg.Holder = chEntry
		}
		ch.State = cfg.CharacterPrepared
	})
}

// stepIntervalAt looks up the movement cadence for the row at y. Heights
// between rows use the base cadence.
func stepIntervalAt(e *ecs.ECS, y float64) int {
	if row, ok := cfg.Layout.RowAt(y); ok {
		if belt := conveyorForRow(e, row); belt != nil {
			return belt.StepInterval
		}
	}
	return cfg.Layout.StepFrames
}

func conveyorForRow(e *ecs.ECS, row int) *components.ConveyorData {
	var found *components.ConveyorData
	tags.Conveyor.Each(e.World, func(entry *donburi.Entry) {
		c := components.Conveyor.Get(entry)
		if c.Row == row {
			found = c
		}
	})
	return found
}
