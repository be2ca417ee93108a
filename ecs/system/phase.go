package system

import (
	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
)

type playingOnly struct {
	inner ecs.System
}

// WhilePlaying runs inner only while the session is in the playing phase.
func WhilePlaying(inner ecs.System) ecs.System {
	return playingOnly{inner: inner}
}

func (p playingOnly) Update(w *ecs.World) {
	if phase, ok := ecs.Single(w, component.GamePhaseComponent.Kind()); ok && phase.Phase != component.PhasePlaying {
		return
	}
	p.inner.Update(w)
}
