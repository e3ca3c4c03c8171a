package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

func TestPause_TogglesOnTheEdge(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	pause := GetOrCreatePause(e)

	pressActions(e, cfg.ActionPause)
	UpdatePause(e)
	assert.True(t, pause.IsPaused)
	assert.Contains(t, pendingSounds(e), cfg.SoundPause)

	// Key still held: stays paused
	pressActions(e, cfg.ActionPause)
	UpdatePause(e)
	assert.True(t, pause.IsPaused)

	pressActions(e)
	UpdatePause(e)
	pressActions(e, cfg.ActionPause)
	UpdatePause(e)
	assert.False(t, pause.IsPaused)
}

func TestPause_FreezesWrappedSystems(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	GetOrCreatePause(e).IsPaused = true

	pkg := newPackage(e, cfg.Layout.SpawnX, cfg.Layout.BaseRowY)
	wrapped := WithPauseCheck(UpdatePackages)
	for i := 0; i < 9; i++ {
		wrapped(e)
	}
	assert.Equal(t, 0, pkg.Aux, "belt systems stop while paused")

	GetOrCreatePause(e).IsPaused = false
	wrapped(e)
	assert.Equal(t, 1, pkg.Aux)
}
