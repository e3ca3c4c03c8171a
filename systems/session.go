package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/tags"
)

// UpdateSession sweeps delivered and lost packages, scores them, and closes
// the round at the failure limit. After game over it only runs down the
// linger timer; the scene switches when that hits zero.
func UpdateSession(e *ecs.ECS) {
	session := CurrentSession(e)
	if session == nil {
		return
	}
	if session.GameOver {
		if session.LingerFrames > 0 {
			session.LingerFrames--
		}
		return
	}

	lay := cfg.Layout
	var toRemove []*donburi.Entry

	tags.Package.Each(e.World, func(entry *donburi.Entry) {
		pkg := components.Package.Get(entry)
		switch {
		case pkg.State == cfg.PackageDelivered:
			session.Score++
			toRemove = append(toRemove, entry)
		case pkg.Pos.X < lay.LeftFailX:
			failPackage(e, session, cfg.SideLeft)
			toRemove = append(toRemove, entry)
		case pkg.Pos.X > lay.RightFailX:
			failPackage(e, session, cfg.SideRight)
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		removeEntity(entry)
	}

	if session.Failures >= cfg.Session.MaxFailures {
		session.GameOver = true
		session.LingerFrames = cfg.Session.GameOverLinger
		if session.Score > session.HighScore {
			session.HighScore = session.Score
			session.NewBest = true
		}
		SaveHighScore(session.Difficulty, session.Score)
		PlaySFX(e, cfg.SoundGameOver)
	}
}

func failPackage(e *ecs.ECS, session *components.SessionData, side cfg.SideID) {
	session.Failures++
	TriggerBoss(e, side, cfg.Boss.FailureFrames)
	PlaySFX(e, cfg.SoundMiss)
}

// CurrentSession returns the round singleton, nil outside a round.
func CurrentSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// removeEntity despawns an entity along with its collision object.
func removeEntity(entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	entry.Remove()
}
