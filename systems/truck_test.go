package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

func TestTruck_DriveCycleComesBackToTheDock(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	truck := currentTruck(e)
	require.Equal(t, cfg.TruckWaiting, truck.State)
	require.Equal(t, cfg.Layout.TruckDockX, truck.X)

	truck.State = cfg.TruckDelivering
	truck.Load = cfg.Truck.Capacity
	truck.Deliveries = 1

	// Dock at x=8, off screen at x=-56, 2 px per frame: 32 frames out
	for i := 0; i < 31; i++ {
		UpdateTruck(e)
	}
	assert.Equal(t, cfg.TruckDelivering, truck.State)

	UpdateTruck(e)
	assert.Equal(t, cfg.TruckReturning, truck.State)
	assert.Equal(t, cfg.Layout.TruckOffX, truck.X)
	assert.Equal(t, 0, truck.Load, "cargo unloads at the turnaround")

	// ...and 32 frames back
	for i := 0; i < 31; i++ {
		UpdateTruck(e)
	}
	assert.Equal(t, cfg.TruckReturning, truck.State)

	UpdateTruck(e)
	assert.Equal(t, cfg.TruckWaiting, truck.State)
	assert.Equal(t, cfg.Layout.TruckDockX, truck.X)
	assert.Equal(t, 1, truck.Deliveries, "the run already counted at departure")

	boss := getOrCreateBoss(e)
	assert.Equal(t, cfg.SideLeft, boss.Side)
	assert.Equal(t, cfg.Boss.ReturnFrames, boss.Timer)
	assert.Contains(t, pendingSounds(e), cfg.SoundTruckReturn)
}

func TestTruck_ParksDuringGameOver(t *testing.T) {
	e, session := newRound(t, cfg.DifficultyEasy)
	truck := currentTruck(e)
	truck.State = cfg.TruckReturning
	truck.X = 0

	session.GameOver = true
	UpdateTruck(e)

	assert.Equal(t, 0.0, truck.X)
	assert.Equal(t, cfg.TruckReturning, truck.State)
}
