package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

func TestSpawner_OpensTheRoundAfterTheInitialDelay(t *testing.T) {
	e, session := newRound(t, cfg.DifficultyEasy)
	require.Equal(t, cfg.Spawn.InitialDelay, session.SpawnTimer)

	UpdateSpawner(e)
	assert.Equal(t, cfg.Spawn.InitialDelay-1, session.SpawnTimer)
	assert.Equal(t, 0, activePackages(e))
}

func TestSpawner_DropsAPackageOnTheFeeder(t *testing.T) {
	e, session := newRound(t, cfg.DifficultyEasy)
	session.SpawnTimer = 1

	UpdateSpawner(e)

	require.Equal(t, 1, activePackages(e))
	pkg := firstPackage(t, e)
	assert.Equal(t, cfg.Layout.SpawnX, pkg.Pos.X)
	assert.Equal(t, cfg.Layout.BaseRowY, pkg.Pos.Y)

	assert.GreaterOrEqual(t, session.SpawnTimer, cfg.Spawn.MinDelay)
	assert.LessOrEqual(t, session.SpawnTimer, cfg.Spawn.MaxDelay)
}

func TestSpawner_HonorsTheActiveCap(t *testing.T) {
	e, session := newRound(t, cfg.DifficultyEasy)
	session.SpawnTimer = 1
	newPackage(e, 100, cfg.Layout.BaseRowY)

	// Cap is one below 50 points, so nothing new appears
	UpdateSpawner(e)
	assert.Equal(t, 1, activePackages(e))
	assert.Equal(t, 0, session.SpawnTimer, "timer must not rearm on a blocked spawn")
}

func TestSpawner_RetriesWhileTheFeederIsBusy(t *testing.T) {
	e, session := newRound(t, cfg.DifficultyEasy)
	session.Score = cfg.Difficulties[cfg.DifficultyEasy].ScoreStep // cap 2
	session.SpawnTimer = 1

	blocker := newPackage(e, cfg.Layout.SpawnX, cfg.Layout.BaseRowY)
	UpdateSpawner(e)
	assert.Equal(t, 1, activePackages(e))

	// Once the blocker clears the feeder the held spawn fires immediately.
	// The spawner asks the collision space, which syncs at the end of each
	// frame, so the move has to reach the space first.
	blocker.SetPos(200, cfg.Layout.BaseRowY)
	UpdateObjects(e)
	UpdateSpawner(e)
	assert.Equal(t, 2, activePackages(e))
	assert.GreaterOrEqual(t, session.SpawnTimer, cfg.Spawn.MinDelay)
}

func TestSpawner_ReadsTheFeederFromTheCollisionSpace(t *testing.T) {
	e, session := newRound(t, cfg.DifficultyEasy)
	session.Score = cfg.Difficulties[cfg.DifficultyEasy].ScoreStep
	session.SpawnTimer = 1

	blocker := newPackage(e, cfg.Layout.SpawnX, cfg.Layout.BaseRowY)
	blocker.SetPos(200, cfg.Layout.BaseRowY)

	// The component moved but the space has not heard about it yet, so the
	// feeder still reads as occupied
	UpdateSpawner(e)
	assert.Equal(t, 1, activePackages(e))

	UpdateObjects(e)
	UpdateSpawner(e)
	assert.Equal(t, 2, activePackages(e))
}

func TestSpawner_UpperRowsNeverBlockTheFeeder(t *testing.T) {
	e, session := newRound(t, cfg.DifficultyEasy)
	session.Score = cfg.Difficulties[cfg.DifficultyEasy].ScoreStep
	session.SpawnTimer = 1

	// Same x as the feeder but three rows up
	newPackage(e, cfg.Layout.SpawnX, cfg.Layout.RowY(3))

	UpdateSpawner(e)
	assert.Equal(t, 2, activePackages(e))
}

func TestSpawner_SleepsAfterGameOver(t *testing.T) {
	e, session := newRound(t, cfg.DifficultyEasy)
	session.SpawnTimer = 1
	session.GameOver = true

	UpdateSpawner(e)
	assert.Equal(t, 0, activePackages(e))
	assert.Equal(t, 1, session.SpawnTimer)
}
