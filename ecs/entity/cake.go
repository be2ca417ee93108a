package entity

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
	"github.com/milk9111/cakechase/prefabs"
)

// NewCakeMotion converts the cake spec into its component.
func NewCakeMotion(spec prefabs.CakeSpec) *component.CakeMotion {
	m := &component.CakeMotion{
		Policy:        component.CakePolicy(spec.Policy),
		Omega:         spec.Omega,
		Lift:          spec.Lift,
		SpawnLift:     spec.SpawnLift,
		ExpiryPenalty: spec.ExpiryPenalty,
		RespawnTimer:  component.NewTimer(spec.RespawnEvery, component.TimerRepeating),
		ScriptPath:    spec.Script,
	}
	if spec.GameOverScore != nil {
		v := *spec.GameOverScore
		m.GameOverScore = &v
	}
	return m
}

// SpawnCake creates a cake visual at the given world position.
func SpawnCake(w *ecs.World, x, y, z float64) (ecs.Entity, error) {
	cake := ecs.CreateEntity(w)
	if err := ecs.Add(w, cake, component.CakeTagComponent.Kind(), &component.CakeTag{}); err != nil {
		return 0, fmt.Errorf("cake: add tag: %w", err)
	}
	t := component.NewTransform(float32(x), float32(y), float32(z))
	if err := ecs.Add(w, cake, component.TransformComponent.Kind(), &t); err != nil {
		return 0, fmt.Errorf("cake: add transform: %w", err)
	}
	if err := ecs.Add(w, cake, component.ModelComponent.Kind(), &component.Model{Kind: component.ModelCake}); err != nil {
		return 0, fmt.Errorf("cake: add model: %w", err)
	}
	return cake, nil
}

// PickFreeCell draws a uniformly random integer cell that is not the
// player's rounded cell. The board must have at least two cells.
func PickFreeCell(board *component.Board, p *component.Player, rng *rand.Rand) (int, int, bool) {
	if board == nil || rng == nil || board.SizeI*board.SizeJ < 2 {
		return 0, 0, false
	}
	pi, pj := -1, -1
	if p != nil {
		pi, pj = board.CellIndex(p.I, p.J)
	}
	for {
		i := rng.Intn(board.SizeI)
		j := rng.Intn(board.SizeJ)
		if i != pi || j != pj {
			return i, j, true
		}
	}
}

// OrbitPoint evaluates the deterministic cake loop at t seconds.
func OrbitPoint(board *component.Board, omega, t float64) (float64, float64) {
	rx := float64(board.SizeI-2) / 2
	ry := float64(board.SizeJ-2) / 2
	i := math.Sin(t*omega)*rx + rx + 1
	j := math.Cos(t*omega)*ry + ry + 1
	return i, j
}
