package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
	"github.com/milk9111/cakechase/ecs/entity"
	"github.com/milk9111/cakechase/prefabs"
)

type testSession struct {
	w       *ecs.World
	session ecs.Entity
	input   *component.Input
}

func newTestSession(t *testing.T, mutate func(*prefabs.GameSpec)) *testSession {
	t.Helper()
	spec := prefabs.DefaultGameSpec()
	// Keep the respawn timer out of the way unless a test opts in.
	spec.Cake.RespawnEvery = time.Hour
	if mutate != nil {
		mutate(&spec)
	}
	w := ecs.NewWorld()
	session, err := entity.NewSession(w, spec, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	input, _ := ecs.Get(w, session, component.InputComponent.Kind())
	return &testSession{w: w, session: session, input: input}
}

func (s *testSession) player(t *testing.T) *component.Player {
	t.Helper()
	p, ok := ecs.Single(s.w, component.PlayerComponent.Kind())
	if !ok {
		t.Fatal("missing player")
	}
	return p
}

func (s *testSession) cake(t *testing.T) *component.Cake {
	t.Helper()
	c, ok := ecs.Get(s.w, s.session, component.CakeComponent.Kind())
	if !ok {
		t.Fatal("missing cake")
	}
	return c
}

func (s *testSession) score(t *testing.T) *component.Score {
	t.Helper()
	sc, ok := ecs.Get(s.w, s.session, component.ScoreComponent.Kind())
	if !ok {
		t.Fatal("missing score")
	}
	return sc
}

func (s *testSession) board(t *testing.T) *component.Board {
	t.Helper()
	b, ok := ecs.Get(s.w, s.session, component.BoardComponent.Kind())
	if !ok {
		t.Fatal("missing board")
	}
	return b
}

// frame advances the clock by d, runs the given systems in order and then
// drops the frame's events like the scheduler does.
func (s *testSession) frame(d time.Duration, systems ...ecs.System) {
	NewFixedClockSystem(d).Update(s.w)
	for _, sys := range systems {
		sys.Update(s.w)
	}
	s.w.Events().Drain()
}

// moveCakeTo parks a present cake on (i, j).
func (s *testSession) moveCakeTo(t *testing.T, i, j float64) {
	t.Helper()
	c := s.cake(t)
	c.I, c.J = i, j
}
