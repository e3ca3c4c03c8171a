package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/archetypes"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// CreateSession starts the round bookkeeping. The first package is already
// on the feeder when the round opens, so the spawner starts on the long
// initial delay rather than the regular one.
func CreateSession(ecs *ecs.ECS, diff *cfg.DifficultyConfig, highScore int) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Difficulty: diff,
		HighScore:  highScore,
		SpawnTimer: cfg.Spawn.InitialDelay,
	})
	return session
}
