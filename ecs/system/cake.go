package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
	"github.com/milk9111/cakechase/ecs/entity"
)

// CakeSystem moves the cake according to the session's cake policy.
type CakeSystem struct {
	rng    *rand.Rand
	script *cakeScript
	// failed remembers a script that did not compile or run so the error
	// is logged once per edit instead of once per frame.
	failed string
}

func NewCakeSystem(rng *rand.Rand) *CakeSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &CakeSystem{rng: rng}
}

// ReloadScript drops the compiled cake script so the next frame recompiles
// it from disk.
func (s *CakeSystem) ReloadScript() {
	if s == nil {
		return
	}
	s.script = nil
	s.failed = ""
}

func (s *CakeSystem) Update(w *ecs.World) {
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
	motion, ok := ecs.Get(w, session, component.CakeMotionComponent.Kind())
	if !ok {
		return
	}
	cake, ok := ecs.Get(w, session, component.CakeComponent.Kind())
	if !ok {
		return
	}
	clock, ok := ecs.Get(w, session, component.ClockComponent.Kind())
	if !ok {
		return
	}

	switch motion.Policy {
	case component.CakeOrbit:
		i, j := entity.OrbitPoint(board, motion.Omega, clock.Seconds())
		placeOrbitingCake(w, cake, motion, i, j)
	case component.CakeScript:
		i, j, ok := s.evalScript(motion, board, clock.Seconds())
		if !ok {
			return
		}
		placeOrbitingCake(w, cake, motion, i, j)
	case component.CakeRespawn:
		s.respawn(w, session, board, motion, cake, clock)
	}
}

// placeOrbitingCake moves the cake to (i, j) at the orbit lift. An eaten
// cake stays eaten; the path only moves a present one.
func placeOrbitingCake(w *ecs.World, cake *component.Cake, motion *component.CakeMotion, i, j float64) {
	cake.I, cake.J = i, j
	t, ok := ecs.Get(w, ecs.Ref(cake.Visual), component.TransformComponent.Kind())
	if !ok {
		return
	}
	t.Translation[0] = float32(i)
	t.Translation[1] = float32(motion.Lift)
	t.Translation[2] = float32(j)
}

func (s *CakeSystem) respawn(w *ecs.World, session ecs.Entity, board *component.Board, motion *component.CakeMotion, cake *component.Cake, clock *component.Clock) {
	if !motion.RespawnTimer.Tick(clock.Delta) {
		return
	}

	if cake.Present() {
		visual := ecs.Ref(cake.Visual)
		ecs.DestroyEntity(w, visual)
		cake.Visual = 0
		if score, ok := ecs.Get(w, session, component.ScoreComponent.Kind()); ok {
			score.Score -= motion.ExpiryPenalty
			w.Events().Push(ecs.Event{Type: ecs.EventCakeExpired, Entity: visual, Data: *score})
			if motion.GameOverScore != nil && score.Score <= *motion.GameOverScore {
				if phase, ok := ecs.Get(w, session, component.GamePhaseComponent.Kind()); ok {
					phase.Phase = component.PhaseGameOver
				}
				w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Entity: session, Data: *score})
				return
			}
		}
	}

	var player *component.Player
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		if player == nil {
			player = p
		}
	})

	ci, cj, ok := entity.PickFreeCell(board, player, s.rng)
	if !ok {
		return
	}
	cake.I, cake.J = float64(ci), float64(cj)
	visual, err := entity.SpawnCake(w, cake.I, board.HeightAt(cake.I, cake.J)+motion.SpawnLift, cake.J)
	if err != nil {
		log.Printf("cake: spawn: %v", err)
		return
	}
	cake.Visual = uint64(visual)
	w.Events().Push(ecs.Event{Type: ecs.EventCakeSpawned, Entity: visual})
}

func (s *CakeSystem) evalScript(motion *component.CakeMotion, board *component.Board, t float64) (float64, float64, bool) {
	if s.failed == motion.ScriptPath {
		return 0, 0, false
	}
	if s.script == nil || s.script.path != motion.ScriptPath {
		script, err := compileCakeScript(motion.ScriptPath)
		if err != nil {
			log.Printf("cake: compile script %s: %v", motion.ScriptPath, err)
			s.failed = motion.ScriptPath
			return 0, 0, false
		}
		s.script = script
		s.failed = ""
	}

	i, j, err := s.script.eval(t, board.SizeI, board.SizeJ, motion.Omega)
	if err != nil {
		log.Printf("cake: run script %s: %v", motion.ScriptPath, err)
		s.failed = motion.ScriptPath
		return 0, 0, false
	}
	return i, j, true
}
