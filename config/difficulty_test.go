package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyTable_PresetsAreWellFormed(t *testing.T) {
	for i, d := range Difficulties {
		assert.Equal(t, DifficultyID(i), d.ID, "%s", d.Name)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Blurb)

		// An even belt count would put the delivery row on the right side
		assert.Equal(t, 1, d.Belts%2, "%s belt count must be odd", d.Name)
		assert.GreaterOrEqual(t, d.Belts, 5, "%s", d.Name)

		assert.Greater(t, d.ScoreStep, 0, "%s", d.Name)
		assert.GreaterOrEqual(t, d.TruckElimEvery, 0, "%s", d.Name)

		// Speeds must divide the base cadence into at least one whole frame
		for _, speed := range []float64{d.SpeedRow0, d.SpeedEven, d.SpeedOdd} {
			assert.GreaterOrEqual(t, StepInterval(speed), 1, "%s speed %v", d.Name, speed)
		}
	}
}

func TestDifficultyTable_KnownShapes(t *testing.T) {
	assert.Equal(t, 5, Difficulties[DifficultyEasy].Belts)
	assert.Equal(t, 7, Difficulties[DifficultyMedium].Belts)
	assert.Equal(t, 9, Difficulties[DifficultyExtreme].Belts)
	assert.Equal(t, 5, Difficulties[DifficultyCrazy].Belts)

	// Only the last preset scrambles belts and controls
	for id, d := range Difficulties {
		wantScramble := DifficultyID(id) == DifficultyCrazy
		assert.Equal(t, wantScramble, d.RandomPerBelt, "%s", d.Name)
		assert.Equal(t, wantScramble, d.InvertControls, "%s", d.Name)
	}

	// Crazy never forgives a failure
	assert.Equal(t, 0, Difficulties[DifficultyCrazy].TruckElimEvery)
}

func TestRandomSpeedChoices_AllProduceWholeFrameCadences(t *testing.T) {
	for _, speed := range RandomSpeedChoices {
		assert.GreaterOrEqual(t, StepInterval(speed), 1, "speed %v", speed)
	}
}
