package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

func TestForeman_SlidesOutThenRetreats(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	TriggerBoss(e, cfg.SideRight, 60)
	boss := getOrCreateBoss(e)
	require.Equal(t, cfg.SideRight, boss.Side)
	require.Equal(t, 60, boss.Timer)
	assert.Equal(t, cfg.Boss.HiddenY, boss.SlideY, "slide starts on the first update")

	// Quarter second slide: fully out well before 20 frames
	for i := 0; i < 20; i++ {
		UpdateBoss(e)
	}
	assert.Equal(t, cfg.Boss.ShownY, boss.SlideY)
	assert.Equal(t, 40, boss.Timer)

	for i := 0; i < 40; i++ {
		UpdateBoss(e)
	}
	assert.Equal(t, 0, boss.Timer)

	UpdateBoss(e)
	assert.Equal(t, cfg.Boss.HiddenY, boss.SlideY)
}

func TestForeman_RetriggerRestartsTheSlide(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	TriggerBoss(e, cfg.SideRight, 60)
	for i := 0; i < 20; i++ {
		UpdateBoss(e)
	}
	boss := getOrCreateBoss(e)
	require.Equal(t, cfg.Boss.ShownY, boss.SlideY)

	TriggerBoss(e, cfg.SideLeft, cfg.Boss.ReturnFrames)
	assert.Equal(t, cfg.SideLeft, boss.Side)
	assert.Equal(t, cfg.Boss.ReturnFrames, boss.Timer)

	UpdateBoss(e)
	assert.Less(t, boss.SlideY, cfg.Boss.HiddenY, "one frame in, already moving")
	assert.Greater(t, boss.SlideY, cfg.Boss.ShownY, "but not out yet")
}
