package system

import (
	"math"

	"github.com/milk9111/cakechase/common"
	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
	"github.com/milk9111/cakechase/ecs/entity"
)

const (
	headingRight = 0.0
	headingUp    = math.Pi / 2
	headingDown  = -math.Pi / 2
	headingLeft  = math.Pi
)

// GridMovementSystem steps the player on the board once its cooldown has
// run out and lets it eat the cake.
type GridMovementSystem struct{}

func NewGridMovementSystem() *GridMovementSystem {
	return &GridMovementSystem{}
}

func (s *GridMovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	session, ok := ecs.First(w, component.GameTagComponent.Kind())
	if !ok {
		return
	}
	board, ok := ecs.Get(w, session, component.BoardComponent.Kind())
	if !ok {
		return
	}
	clock, ok := ecs.Get(w, session, component.ClockComponent.Kind())
	if !ok {
		return
	}
	input, _ := ecs.Get(w, session, component.InputComponent.Kind())
	score, _ := ecs.Get(w, session, component.ScoreComponent.Kind())
	cake, _ := ecs.Get(w, session, component.CakeComponent.Kind())

	delta := clock.Delta
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		if p.Cooldown.Tick(delta) && MovePlayer(board, p, input) {
			p.Cooldown.Reset()
			if t, ok := ecs.Get(w, ecs.Ref(p.Visual), component.TransformComponent.Kind()); ok {
				*t = entity.PlayerTransform(board, p)
			}
		}

		if !cake.Present() || score == nil {
			return
		}
		if p.I != cake.I || p.J != cake.J {
			return
		}
		score.Score += 2
		score.Eaten++
		visual := ecs.Ref(cake.Visual)
		ecs.DestroyEntity(w, visual)
		cake.Visual = 0
		w.Events().Push(ecs.Event{Type: ecs.EventCakeEaten, Entity: visual, Data: *score})
	})
}

// MovePlayer applies every held arrow in the order up, down, right, left.
// A held arrow counts as a move even when the player sits on the edge; the
// heading still turns. The result is clamped to the board and snapped to
// the step lattice.
func MovePlayer(board *component.Board, p *component.Player, in *component.Input) bool {
	if board == nil || p == nil || in == nil {
		return false
	}

	bb := common.BoardBounds(board.SizeI, board.SizeJ)
	moved := false

	if in.Up {
		if p.I < bb.R {
			p.I += p.Step
		}
		p.Rotation = headingUp
		moved = true
	}
	if in.Down {
		if p.I > bb.L {
			p.I -= p.Step
		}
		p.Rotation = headingDown
		moved = true
	}
	if in.Right {
		if p.J < bb.T {
			p.J += p.Step
		}
		p.Rotation = headingRight
		moved = true
	}
	if in.Left {
		if p.J > bb.B {
			p.J -= p.Step
		}
		p.Rotation = headingLeft
		moved = true
	}

	if moved {
		p.I, p.J = common.ClampToBoard(bb, p.I, p.J)
		p.I, p.J = common.Quantize(p.I), common.Quantize(p.J)
	}
	return moved
}
