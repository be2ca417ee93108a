package entity

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
	"github.com/milk9111/cakechase/prefabs"
)

// NewPlayer spawns the player in the middle cell of the board together
// with its visual.
func NewPlayer(w *ecs.World, board *component.Board, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	if board == nil {
		return 0, fmt.Errorf("player: board is nil")
	}

	p := &component.Player{
		I:        math.Floor(float64(board.SizeI) / 2),
		J:        math.Floor(float64(board.SizeJ) / 2),
		Step:     spec.Step,
		Cooldown: component.NewTimer(spec.Cooldown, component.TimerOnce),
	}

	visual := ecs.CreateEntity(w)
	t := PlayerTransform(board, p)
	if err := ecs.Add(w, visual, component.TransformComponent.Kind(), &t); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, visual, component.ModelComponent.Kind(), &component.Model{Kind: component.ModelPlayer}); err != nil {
		return 0, fmt.Errorf("player: add model: %w", err)
	}
	p.Visual = uint64(visual)

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), p); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	return player, nil
}

// PlayerTransform places the player on the cell under its rounded position,
// facing its heading.
func PlayerTransform(board *component.Board, p *component.Player) component.Transform {
	return component.Transform{
		Translation: mgl32.Vec3{float32(p.I), float32(board.HeightAt(p.I, p.J)), float32(p.J)},
		Rotation:    mgl32.QuatRotate(float32(p.Rotation), mgl32.Vec3{0, 1, 0}),
	}
}
