package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

func newGameOverUnderTest(t *testing.T) (*ecs.ECS, ecs.System, *sceneRecorder) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	recorder := &sceneRecorder{}
	update := NewUpdateGameOver(recorder,
		func() interface{} { return "retry" },
		func() interface{} { return "menu" },
	)
	return e, update, recorder
}

func TestGameOver_ResultsFadeInFromBlack(t *testing.T) {
	e, update, _ := newGameOverUnderTest(t)

	SetGameOverResult(e, 12, 12, true)
	gameOver := GetOrCreateGameOver(e)
	assert.Equal(t, 12, gameOver.FinalScore)
	assert.True(t, gameOver.NewBest)
	assert.Equal(t, 0.0, gameOver.FadeAlpha)

	// 0.6s fade at 60fps: fully visible within 40 frames
	for i := 0; i < 40; i++ {
		update(e)
	}
	assert.Equal(t, 1.0, gameOver.FadeAlpha)
	assert.Nil(t, gameOver.Fade)
}

func TestGameOver_RetrySelectionRestartsTheRound(t *testing.T) {
	e, update, recorder := newGameOverUnderTest(t)
	SetGameOverResult(e, 3, 9, false)
	require.Equal(t, components.GameOverRetry, GetOrCreateGameOver(e).SelectedOption)

	pressActions(e, cfg.ActionMenuSelect)
	update(e)

	require.Len(t, recorder.changed, 1)
	assert.Equal(t, "retry", recorder.changed[0])
}

func TestGameOver_MenuSelectionLeavesTheRound(t *testing.T) {
	e, update, recorder := newGameOverUnderTest(t)
	SetGameOverResult(e, 3, 9, false)

	pressActions(e, cfg.ActionMenuDown)
	update(e)
	assert.Equal(t, components.GameOverMenu, GetOrCreateGameOver(e).SelectedOption)

	pressActions(e, cfg.ActionMenuSelect)
	update(e)

	require.Len(t, recorder.changed, 1)
	assert.Equal(t, "menu", recorder.changed[0])
}

func TestGameOver_ShortcutKeysSkipTheMenu(t *testing.T) {
	e, update, recorder := newGameOverUnderTest(t)

	pressActions(e, cfg.ActionRestart)
	update(e)
	pressActions(e, cfg.ActionToMenu)
	update(e)

	require.Len(t, recorder.changed, 2)
	assert.Equal(t, "retry", recorder.changed[0])
	assert.Equal(t, "menu", recorder.changed[1])
}
