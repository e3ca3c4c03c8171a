package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

func TestCharacters_ClimbOneFloorPerPress(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	_, left := characterBySide(e, cfg.SideLeft)
	require.Equal(t, 0, left.Floor)

	pressActions(e, cfg.ActionLeftUp)
	UpdateCharacters(e)
	assert.Equal(t, 1, left.Floor)

	// Same key still down on the next frame: no auto repeat
	pressActions(e, cfg.ActionLeftUp)
	UpdateCharacters(e)
	assert.Equal(t, 1, left.Floor)
}

func TestCharacters_SidesMoveIndependently(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	_, left := characterBySide(e, cfg.SideLeft)
	_, right := characterBySide(e, cfg.SideRight)

	pressActions(e, cfg.ActionLeftUp, cfg.ActionRightUp)
	UpdateCharacters(e)

	assert.Equal(t, 1, left.Floor)
	assert.Equal(t, 1, right.Floor)
}

func TestCharacters_StopAtTopAndBottom(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyEasy)
	_, left := characterBySide(e, cfg.SideLeft)
	_, right := characterBySide(e, cfg.SideRight)

	// Five belts: three left floors, two right floors
	require.Equal(t, 3, left.MaxFloor)
	require.Equal(t, 2, right.MaxFloor)

	left.Floor = left.MaxFloor - 1
	pressActions(e, cfg.ActionLeftUp)
	UpdateCharacters(e)
	assert.Equal(t, left.MaxFloor-1, left.Floor)

	pressActions(e, cfg.ActionRightDown)
	UpdateCharacters(e)
	assert.Equal(t, 0, right.Floor)
}

func TestCharacters_CrazyFlipsTheControls(t *testing.T) {
	e, _ := newRound(t, cfg.DifficultyCrazy)
	_, left := characterBySide(e, cfg.SideLeft)

	// The bindings are swapped at creation, not per frame
	require.Equal(t, cfg.ActionLeftDown, left.UpAction)
	require.Equal(t, cfg.ActionLeftUp, left.DownAction)

	pressActions(e, cfg.ActionLeftDown)
	UpdateCharacters(e)
	assert.Equal(t, 1, left.Floor, "the down key climbs on inverted controls")

	pressActions(e, cfg.ActionLeftUp)
	UpdateCharacters(e)
	assert.Equal(t, 0, left.Floor)
}

func TestCharacters_IgnoreInputAfterGameOver(t *testing.T) {
	e, session := newRound(t, cfg.DifficultyEasy)
	_, left := characterBySide(e, cfg.SideLeft)
	session.GameOver = true

	pressActions(e, cfg.ActionLeftUp)
	UpdateCharacters(e)
	assert.Equal(t, 0, left.Floor)
}
