package system

import (
	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/sfx"
)

// SoundPlayer plays a named effect without blocking.
type SoundPlayer interface {
	Play(name sfx.Name)
}

// AudioSystem turns the frame's gameplay events into sound effects.
type AudioSystem struct {
	player SoundPlayer
}

func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

var eventSounds = map[ecs.EventType]sfx.Name{
	ecs.EventCakeEaten:   sfx.Eat,
	ecs.EventCakeExpired: sfx.Expire,
	ecs.EventCakeSpawned: sfx.Spawn,
	ecs.EventGameOver:    sfx.GameOver,
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil || a.player == nil {
		return
	}
	for _, ev := range w.Events().Pending() {
		if name, ok := eventSounds[ev.Type]; ok {
			a.player.Play(name)
		}
	}
}
