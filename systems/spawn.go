package systems

import (
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/systems/factory"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/tags"
)

// UpdateSpawner feeds new packages onto the feeder belt. The timer only
// rearms after a successful spawn, so once it reaches zero a blocked feeder
// retries every frame. The active package cap starts at one and grows with
// the score.
func UpdateSpawner(e *ecs.ECS) {
	session := CurrentSession(e)
	if session == nil || session.GameOver {
		return
	}

	if session.SpawnTimer > 0 {
		session.SpawnTimer--
	}

	limit := session.Difficulty.PackageCap(session.Score)
	if activePackages(e) >= limit || session.SpawnTimer != 0 {
		return
	}
	if !feederClear(e) {
		return
	}

	factory.CreatePackage(e, cfg.Layout.SpawnX, cfg.Layout.BaseRowY)
	session.SpawnTimer = cfg.Spawn.MinDelay + rand.Intn(cfg.Spawn.MaxDelay-cfg.Spawn.MinDelay+1)
}

func activePackages(e *ecs.ECS) int {
	count := 0
	tags.Package.Each(e.World, func(*donburi.Entry) {
		count++
	})
	return count
}

// feederClear reports whether the feeder segment of the spawn row is free,
// by asking the collision space what overlaps the spawn zone. The zone is a
// thin band around row 0, so a package drifting past at another height does
// not block it. Check is cell-granular, so the hits are narrowed to real
// rect overlaps before they count.
func feederClear(e *ecs.ECS) bool {
	zone := spawnZoneObject(e)
	if zone == nil {
		return true
	}

	check := zone.Check(0, 0, tags.ResolvPackage)
	if check == nil {
		return true
	}
	for _, obj := range check.Objects {
		if obj.X < zone.X+zone.W && obj.X+obj.W > zone.X &&
			obj.Y < zone.Y+zone.H && obj.Y+obj.H > zone.Y {
			return false
		}
	}
	return true
}

func spawnZoneObject(e *ecs.ECS) *resolv.Object {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		if obj.HasTags(tags.ResolvSpawnZone) {
			return obj
		}
	}
	return nil
}
