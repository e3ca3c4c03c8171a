package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

func TestTruckLoadPackage_FillsThenDeparts(t *testing.T) {
	truck := TruckData{State: cfg.TruckWaiting, Capacity: 3}

	assert.False(t, truck.LoadPackage())
	assert.False(t, truck.LoadPackage())
	assert.Equal(t, 2, truck.Load)
	assert.Equal(t, cfg.TruckWaiting, truck.State)

	assert.True(t, truck.LoadPackage(), "the filling load reports the departure")
	assert.Equal(t, 3, truck.Load)
	assert.Equal(t, cfg.TruckDelivering, truck.State)
	assert.Equal(t, 1, truck.Deliveries)
}

func TestTruckLoadPackage_OnlyCountsWhileParked(t *testing.T) {
	truck := TruckData{State: cfg.TruckDelivering, Capacity: 3, Load: 1}

	assert.False(t, truck.LoadPackage())
	assert.Equal(t, 1, truck.Load, "a mid-departure delivery is dropped")
	assert.Equal(t, 0, truck.Deliveries)
}
