package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/systems/factory"
)

// newRound builds a headless world for a difficulty: space, belts, zones,
// both lifters, a parked truck and the session singleton. No packages yet.
func newRound(t *testing.T, id cfg.DifficultyID) (*ecs.ECS, *components.SessionData) {
	t.Helper()
	t.Cleanup(func() { cachedScores = nil })

	e := ecs.NewECS(donburi.NewWorld())
	diff := &cfg.Difficulties[id]

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateConveyors(e, diff)
	factory.CreateZones(e, diff)
	factory.CreateCharacters(e, diff)
	factory.CreateTruck(e, diff)
	factory.CreateSession(e, diff, 0)

	session := CurrentSession(e)
	require.NotNil(t, session)
	return e, session
}

func newPackage(e *ecs.ECS, x, y float64) *components.PackageData {
	entry := factory.CreatePackage(e, x, y)
	return components.Package.Get(entry)
}

func firstPackage(t *testing.T, e *ecs.ECS) *components.PackageData {
	t.Helper()
	entry, ok := components.Package.First(e.World)
	require.True(t, ok, "expected a package in the world")
	return components.Package.Get(entry)
}

// pressActions advances the input singleton one frame with the given
// actions down, the way UpdateInput would after polling.
func pressActions(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func pendingSounds(e *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}

func clearSounds(e *ecs.ECS) {
	audio := GetOrCreateAudio(e)
	audio.PendingSFX = audio.PendingSFX[:0]
}

func TestPackages_StepEveryNinthFrame(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	pkg := newPackage(e, cfg.Layout.SpawnX, cfg.Layout.BaseRowY)

	for i := 0; i < 8; i++ {
		UpdatePackages(e)
	}
	assert.Equal(t, 230.0, pkg.Pos.X, "must hold between cadence ticks")

	UpdatePackages(e)
	assert.Equal(t, 220.0, pkg.Pos.X)
	assert.Equal(t, 152.0, pkg.Pos.Y)
	assert.Equal(t, cfg.DirLeft, pkg.Dir)
}

func TestPackages_RowParitySetsDirection(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)

	odd := newPackage(e, 80, cfg.Layout.RowY(1))
	even := newPackage(e, 100, cfg.Layout.RowY(2))

	for i := 0; i < 9; i++ {
		UpdatePackages(e)
	}

	assert.Equal(t, 90.0, odd.Pos.X, "odd rows run right")
	assert.Equal(t, cfg.DirRight, odd.Dir)

	assert.Equal(t, 90.0, even.Pos.X, "even rows run left")
	assert.Equal(t, cfg.DirLeft, even.Dir)
}

func TestPackages_FasterOddRowsOnMedium(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyMedium)
	pkg := newPackage(e, 80, cfg.Layout.RowY(1))

	for i := 0; i < 5; i++ {
		UpdatePackages(e)
	}
	assert.Equal(t, 80.0, pkg.Pos.X)

	// Speed 1.5 ticks every 6 frames instead of 9
	UpdatePackages(e)
	assert.Equal(t, 90.0, pkg.Pos.X)
}

func TestPackages_GapTeleportLeftbound(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	pkg := newPackage(e, 130, cfg.Layout.BaseRowY)

	for i := 0; i < 9; i++ {
		UpdatePackages(e)
	}

	// The stair gap is crossed in one hop, never stepped through
	assert.Equal(t, cfg.Layout.GapLeftLand, pkg.Pos.X)
	assert.Equal(t, cfg.Layout.BaseRowY, pkg.Pos.Y)
}

func TestPackages_GapTeleportRightbound(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	pkg := newPackage(e, 140, cfg.Layout.RowY(1))
	pkg.Dir = cfg.DirRight

	for i := 0; i < 9; i++ {
		UpdatePackages(e)
	}

	assert.Equal(t, cfg.Layout.GapRightLand, pkg.Pos.X)
	assert.Equal(t, cfg.Layout.RowY(1), pkg.Pos.Y)
}

func TestPackages_CatchThenLiftToTheNextRow(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	_, left := characterBySide(e, cfg.SideLeft)
	require.Equal(t, 0, left.Floor)

	pkg := newPackage(e, 40, cfg.Layout.BaseRowY)

	// Frame 1: the lifter on floor 0 stands level with row 0 and braces
	UpdatePackages(e)
	assert.True(t, pkg.Caught)
	assert.Equal(t, cfg.CharacterPrepared, left.State)
	assert.Contains(t, pendingSounds(e), cfg.SoundCatch)

	// Frame 2: the belt end hands the package up one row
	UpdatePackages(e)
	assert.Equal(t, 50.0, pkg.Pos.X)
	assert.Equal(t, cfg.Layout.RowY(1), pkg.Pos.Y)
	assert.Equal(t, cfg.PackageFalling, pkg.State)
	assert.False(t, pkg.Caught)
	assert.Contains(t, pendingSounds(e), cfg.SoundLift)

	// The transfer pose clears one frame later
	UpdatePackages(e)
	assert.Equal(t, cfg.PackageNormal, pkg.State)
}

func TestPackages_RightSideLift(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)

	// Starts inside the catch zone but short of the belt end; the belt
	// carries it over the edge where the waiting lifter takes it.
	pkg := newPackage(e, 190, cfg.Layout.RowY(1))
	pkg.Dir = cfg.DirRight

	for i := 0; i < 10; i++ {
		UpdatePackages(e)
	}

	assert.Equal(t, 190.0, pkg.Pos.X)
	assert.Equal(t, cfg.Layout.RowY(2), pkg.Pos.Y)
	assert.Equal(t, cfg.PackageFalling, pkg.State)
}

func TestPackages_UnattendedBeltEndDrops(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)

	// Right lifter is on floor 0; row 3's end is floor 1 territory
	pkg := newPackage(e, 200, cfg.Layout.RowY(3))

	UpdatePackages(e)
	assert.Equal(t, cfg.Layout.RowY(3)+cfg.Layout.FallStep, pkg.Pos.Y)
	assert.False(t, pkg.Caught)
}

func TestPackages_DeliveryNeedsTheLifterUpTop(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	_, left := characterBySide(e, cfg.SideLeft)

	top := cfg.Layout.RowY(cfg.Layout.DeliveryRow(5))
	pkg := newPackage(e, 40, top)

	// Lifter still on floor 0: the package sails off the end and falls
	UpdatePackages(e)
	assert.Equal(t, top+cfg.Layout.FallStep, pkg.Pos.Y)
	assert.Equal(t, cfg.PackageNormal, pkg.State)

	// With the lifter on the delivery floor the handoff happens instead
	left.Floor = cfg.Layout.DeliveryFloor(5)
	pkg2 := newPackage(e, 40, top)
	UpdatePackages(e)
	assert.Equal(t, cfg.PackageDelivered, pkg2.State)
	assert.Equal(t, 1, currentTruck(e).Load)
	assert.Contains(t, pendingSounds(e), cfg.SoundLoad)
}

func TestPackages_FloorHoldsWhileTruckIsOut(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	truck := currentTruck(e)
	truck.State = cfg.TruckDelivering

	pkg := newPackage(e, cfg.Layout.SpawnX, cfg.Layout.BaseRowY)
	for i := 0; i < 9; i++ {
		UpdatePackages(e)
	}

	assert.Equal(t, 230.0, pkg.Pos.X, "belts freeze during the delivery run")
	assert.Equal(t, 0, pkg.Aux)
}

func TestPackages_CatchExpiresWhileTheTruckIsOut(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	_, left := characterBySide(e, cfg.SideLeft)

	// Caught at the left belt end with the lifter on floor 0
	pkg := newPackage(e, 40, cfg.Layout.BaseRowY)
	UpdatePackages(e)
	require.True(t, pkg.Caught)

	// The truck leaves and the lifter walks away mid-run
	currentTruck(e).State = cfg.TruckDelivering
	left.Floor = 2
	UpdatePackages(e)
	assert.False(t, pkg.Caught, "frozen frames must keep tracking the lifter")
	assert.Equal(t, 40.0, pkg.Pos.X)

	// Docking again must not lift off the long-gone catch
	currentTruck(e).State = cfg.TruckWaiting
	UpdatePackages(e)
	assert.Equal(t, cfg.Layout.BaseRowY, pkg.Pos.Y)
	assert.Equal(t, cfg.PackageNormal, pkg.State)
}

func TestPackages_FullTruckPaysOutAndForgives(t *testing.T) {
	e, session := newRound(t, cfg.DifficultyEasy)
	_, left := characterBySide(e, cfg.SideLeft)
	left.Floor = cfg.Layout.DeliveryFloor(5)

	truck := currentTruck(e)
	truck.Load = cfg.Truck.Capacity - 1
	truck.Deliveries = 2 // Easy forgives on every 3rd full run
	session.Failures = 2

	newPackage(e, 40, cfg.Layout.RowY(cfg.Layout.DeliveryRow(5)))
	UpdatePackages(e)

	assert.Equal(t, cfg.TruckDelivering, truck.State)
	assert.Equal(t, 3, truck.Deliveries)
	assert.Equal(t, cfg.Truck.FullBonus, session.Score)
	assert.Equal(t, 1, session.Failures)
	assert.Contains(t, pendingSounds(e), cfg.SoundTruckFull)
}

func TestPackages_CrazyNeverForgivesAFailure(t *testing.T) {
	e, session := newRound(t, cfg.DifficultyCrazy)
	_, left := characterBySide(e, cfg.SideLeft)
	left.Floor = cfg.Layout.DeliveryFloor(5)

	truck := currentTruck(e)
	truck.Load = cfg.Truck.Capacity - 1
	truck.Deliveries = 2
	session.Failures = 2

	newPackage(e, 40, cfg.Layout.RowY(cfg.Layout.DeliveryRow(5)))
	UpdatePackages(e)

	assert.Equal(t, cfg.TruckDelivering, truck.State)
	assert.Equal(t, cfg.Truck.FullBonus, session.Score)
	assert.Equal(t, 2, session.Failures, "no elimination cadence on this preset")
}

func TestPackages_CatchSoundFiresOncePerCatch(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)

	// In the catch zone but clear of the belt end, so nothing lifts
	newPackage(e, 60, cfg.Layout.BaseRowY)

	UpdatePackages(e)
	assert.Contains(t, pendingSounds(e), cfg.SoundCatch)
	clearSounds(e)

	for i := 0; i < 7; i++ {
		UpdatePackages(e)
	}
	assert.NotContains(t, pendingSounds(e), cfg.SoundCatch, "held catch must stay silent")
}
