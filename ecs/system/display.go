package system

import (
	"fmt"

	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
)

// DisplaySystem rebuilds the HUD text from the session state.
type DisplaySystem struct{}

func NewDisplaySystem() *DisplaySystem {
	return &DisplaySystem{}
}

func (d *DisplaySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	session, ok := ecs.First(w, component.GameTagComponent.Kind())
	if !ok {
		return
	}
	display, ok := ecs.Get(w, session, component.DisplayComponent.Kind())
	if !ok {
		return
	}
	clock, _ := ecs.Get(w, session, component.ClockComponent.Kind())
	score, _ := ecs.Get(w, session, component.ScoreComponent.Kind())
	phase, _ := ecs.Get(w, session, component.GamePhaseComponent.Kind())

	var player component.Player
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		player = *p
	})

	display.Text = FormatDisplay(clock, &player, score, phase)
}

// FormatDisplay renders the HUD lines: elapsed seconds, player position,
// heading in radians and the score.
func FormatDisplay(clock *component.Clock, p *component.Player, score *component.Score, phase *component.GamePhase) string {
	var s component.Score
	if score != nil {
		s = *score
	}
	text := fmt.Sprintf("time: %.2f\nposition: %.2f, %.2f\nrotation: %.2f\nscore: %d (eaten %d)",
		clock.Seconds(), p.I, p.J, p.Rotation, s.Score, s.Eaten)
	if phase != nil && phase.Phase == component.PhaseGameOver {
		text += "\nGAME OVER"
	}
	return text
}
