package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

func TestSavedScores_RecordKeepsTheBest(t *testing.T) {
	var scores SavedScores

	assert.True(t, scores.Record("EASY", 10))
	assert.False(t, scores.Record("EASY", 5))
	assert.False(t, scores.Record("EASY", 10), "a tie is not a new best")
	assert.True(t, scores.Record("EASY", 12))

	assert.Equal(t, 12, scores.BestFor("EASY"))
	assert.Equal(t, 0, scores.BestFor("MEDIUM"))
}

func TestSavedScores_BestForToleratesAnEmptyTable(t *testing.T) {
	var scores SavedScores
	assert.Equal(t, 0, scores.BestFor("EASY"))
}

func TestBestScore_SticksForTheRunningProcess(t *testing.T) {
	t.Cleanup(func() { cachedScores = nil })
	cachedScores = nil

	easy := &cfg.Difficulties[cfg.DifficultyEasy]
	assert.Equal(t, 0, BestScore(easy))

	// No manager is open, so this only lands in the in-memory table
	SaveHighScore(easy, 7)
	assert.Equal(t, 7, BestScore(easy))

	SaveHighScore(easy, 4)
	assert.Equal(t, 7, BestScore(easy))
}

func TestAllBestScores_ReturnsADetachedCopy(t *testing.T) {
	t.Cleanup(func() { cachedScores = nil })
	cachedScores = nil

	easy := &cfg.Difficulties[cfg.DifficultyEasy]
	SaveHighScore(easy, 7)

	out := AllBestScores()
	out[easy.Name] = 999

	assert.Equal(t, 7, BestScore(easy), "callers cannot poke the stored table")
}
