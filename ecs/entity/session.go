package entity

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
	"github.com/milk9111/cakechase/prefabs"
)

// NewSession builds a fresh game: session entity, board and tiles, player,
// the first cake and the camera rig.
func NewSession(w *ecs.World, spec prefabs.GameSpec, rng *rand.Rand) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("session: world is nil")
	}
	if err := spec.Validate(); err != nil {
		return 0, fmt.Errorf("session: %w", err)
	}

	session := ecs.CreateEntity(w)
	if err := ecs.Add(w, session, component.GameTagComponent.Kind(), &component.GameTag{}); err != nil {
		return 0, fmt.Errorf("session: add game tag: %w", err)
	}
	for _, add := range []func() error{
		func() error { return ecs.Add(w, session, component.ScoreComponent.Kind(), &component.Score{}) },
		func() error { return ecs.Add(w, session, component.ClockComponent.Kind(), &component.Clock{}) },
		func() error { return ecs.Add(w, session, component.GamePhaseComponent.Kind(), &component.GamePhase{}) },
		func() error { return ecs.Add(w, session, component.InputComponent.Kind(), &component.Input{}) },
		func() error { return ecs.Add(w, session, component.DisplayComponent.Kind(), &component.Display{}) },
	} {
		if err := add(); err != nil {
			return 0, fmt.Errorf("session: add state: %w", err)
		}
	}

	board, err := NewBoard(w, session, spec.Board, rng)
	if err != nil {
		return 0, fmt.Errorf("session: %w", err)
	}

	player, err := NewPlayer(w, board, spec.Player)
	if err != nil {
		return 0, fmt.Errorf("session: %w", err)
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())

	motion := NewCakeMotion(spec.Cake)
	if err := ecs.Add(w, session, component.CakeMotionComponent.Kind(), motion); err != nil {
		return 0, fmt.Errorf("session: add cake motion: %w", err)
	}

	cake := &component.Cake{}
	var x, y, z float64
	if motion.Policy == component.CakeRespawn {
		ci, cj, ok := PickFreeCell(board, p, rng)
		if !ok {
			return 0, fmt.Errorf("session: no free cell for cake")
		}
		cake.I, cake.J = float64(ci), float64(cj)
		x, y, z = cake.I, board.HeightAt(cake.I, cake.J)+motion.SpawnLift, cake.J
	} else {
		cake.I, cake.J = OrbitPoint(board, motion.Omega, 0)
		x, y, z = cake.I, motion.Lift, cake.J
	}
	visual, err := SpawnCake(w, x, y, z)
	if err != nil {
		return 0, fmt.Errorf("session: %w", err)
	}
	cake.Visual = uint64(visual)
	if err := ecs.Add(w, session, component.CakeComponent.Kind(), cake); err != nil {
		return 0, fmt.Errorf("session: add cake: %w", err)
	}

	target := mgl32.Vec3{float32(p.I), 1, float32(p.J)}
	if _, err := NewCamera(w, spec.Camera, target); err != nil {
		return 0, fmt.Errorf("session: %w", err)
	}

	return session, nil
}

// ApplyTuning pushes edited tuning into a running session. It reports
// false when the board shape or the cake policy changed and the session
// must be rebuilt. An eaten cake only comes back under respawn, so a
// policy switch cannot be applied in place.
func ApplyTuning(w *ecs.World, session ecs.Entity, spec prefabs.GameSpec) bool {
	board, ok := ecs.Get(w, session, component.BoardComponent.Kind())
	if !ok || board.SizeI != spec.Board.SizeI || board.SizeJ != spec.Board.SizeJ {
		return false
	}
	if motion, ok := ecs.Get(w, session, component.CakeMotionComponent.Kind()); !ok || motion.Policy != component.CakePolicy(spec.Cake.Policy) {
		return false
	}

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		p.Step = spec.Player.Step
		p.Cooldown.Duration = spec.Player.Cooldown
	})

	if motion, ok := ecs.Get(w, session, component.CakeMotionComponent.Kind()); ok {
		tuned := NewCakeMotion(spec.Cake)
		if tuned.RespawnTimer.Duration == motion.RespawnTimer.Duration {
			tuned.RespawnTimer = motion.RespawnTimer
		}
		*motion = *tuned
	}

	ecs.ForEach(w, component.CameraRigComponent.Kind(), func(_ ecs.Entity, rig *component.CameraRig) {
		rig.Tracking = spec.Camera.Tracking
		rig.PanScale = 1
		if rig.Tracking {
			rig.PanScale = 2
		}
	})
	return true
}
