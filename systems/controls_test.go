package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

func newBeltControlsUnderTest(t *testing.T) (*ecs.ECS, ecs.System, *sceneRecorder) {
	t.Helper()
	e, _ := newRound(t, cfg.DifficultyEasy)
	recorder := &sceneRecorder{}
	update := NewUpdateBeltControls(recorder,
		func() interface{} { return "retry" },
		func() interface{} { return "menu" },
	)
	return e, update, recorder
}

func TestBeltControls_RestartOnlyAnswersAfterTheRound(t *testing.T) {
	e, update, recorder := newBeltControlsUnderTest(t)

	// Mid-round, R must not throw the game away
	pressActions(e, cfg.ActionRestart)
	update(e)
	assert.Empty(t, recorder.changed)

	CurrentSession(e).GameOver = true
	pressActions(e, cfg.ActionRestart)
	update(e)

	require.Len(t, recorder.changed, 1)
	assert.Equal(t, "retry", recorder.changed[0])
}

func TestBeltControls_MenuKeySkipsTheResultsScreen(t *testing.T) {
	e, update, recorder := newBeltControlsUnderTest(t)
	CurrentSession(e).GameOver = true

	pressActions(e, cfg.ActionToMenu)
	update(e)

	require.Len(t, recorder.changed, 1)
	assert.Equal(t, "menu", recorder.changed[0])
}
