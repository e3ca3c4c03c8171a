package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/100584680-cell/Final-project-Mario-game-and-watch/tags"
)

// UpdateCharacters moves the two lifters one floor per key press. Up and
// down are checked independently, so opposite presses on the same frame
// cancel out. Held keys do not repeat.
func UpdateCharacters(e *ecs.ECS) {
	session := CurrentSession(e)
	if session == nil || session.GameOver {
		return
	}
	input := getOrCreateInput(e)

	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		ch := components.Character.Get(entry)
		if GetAction(input, ch.UpAction).JustPressed && ch.Floor < ch.MaxFloor-1 {
			ch.Floor++
		}
		if GetAction(input, ch.DownAction).JustPressed && ch.Floor > 0 {
			ch.Floor--
		}
	})
}

// characterBySide finds one of the two lifters.
func characterBySide(e *ecs.ECS, side cfg.SideID) (*donburi.Entry, *components.CharacterData) {
	var entry *donburi.Entry
	var data *components.CharacterData
	tags.Character.Each(e.World, func(ch *donburi.Entry) {
		c := components.Character.Get(ch)
		if c.Side == side {
			entry, data = ch, c
		}
	})
	return entry, data
}
