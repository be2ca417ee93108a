package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/cakechase/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get[int](w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get[float64](w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove[float64](w, e1, h3.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})
}

func TestForEach2(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[string]()

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, stringPtr("two")); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb, stringPtr("three")); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, a *int, b *string) {
					if *a != 2 || *b != "two" {
						t.Fatalf("unexpected values %d %q", *a, *b)
					}
					res = append(res, e)
				})
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				called := false
				ForEach2(w, ka, kb, func(Entity, *int, *int) { called = true })
				if called {
					t.Fatal("expected no visit when other store missing")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestStaleHandles(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy entity")
	}

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot reuse, got id %d want %d", reused.id(), old.id())
	}
	if reused == old {
		t.Fatal("expected a new generation for the reused slot")
	}
	if IsAlive(w, old) {
		t.Fatal("stale handle should not be alive")
	}
	if _, ok := Get(w, old, k); ok {
		t.Fatal("stale handle should not resolve components")
	}
	if _, ok := Get(w, reused, k); ok {
		t.Fatal("reused slot should start without components")
	}
	if err := Add(w, old, k, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	if DestroyEntity(w, old) {
		t.Fatal("destroying a stale handle should report false")
	}
	if IsAlive(w, Ref(0)) {
		t.Fatal("zero handle should never be alive")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid_kind", Add(w, e, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind},
		{"nil_value", Add[int](w, e, component.NewComponentKind[int](), nil), component.ErrNilComponent},
		{"nil_world", Add(nil, e, component.NewComponentKind[int](), intPtr(1)), component.ErrEntityNotAlive},
	}
	if got := component.NewComponentKind[int]().String(); got != "int" {
		t.Fatalf("expected kind name int, got %q", got)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, tc.err)
			}
		})
	}
}

func TestFirstAndSingle(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	if _, ok := First(w, k); ok {
		t.Fatal("expected no entity before any add")
	}

	e := CreateEntity(w)
	if err := Add(w, e, k, intPtr(42)); err != nil {
		t.Fatal(err)
	}

	got, ok := First(w, k)
	if !ok || got != e {
		t.Fatalf("expected %v, got %v ok=%v", e, got, ok)
	}
	v, ok := Single(w, k)
	if !ok || *v != 42 {
		t.Fatalf("expected 42, got %v ok=%v", v, ok)
	}

	*v = 7
	if v2, _ := Get(w, e, k); *v2 != 7 {
		t.Fatalf("expected stored pointer to be shared, got %d", *v2)
	}
}

type recordSystem struct {
	name  string
	log   *[]string
	event EventType
}

func (r recordSystem) Update(w *World) {
	*r.log = append(*r.log, r.name)
	if r.event != "" {
		w.Events().Push(Event{Type: r.event})
	}
}

type countEvents struct {
	seen *int
}

func (c countEvents) Update(w *World) {
	*c.seen += len(w.Events().Pending())
}

func TestSchedulerOrderAndEventFlush(t *testing.T) {
	w := NewWorld()
	var order []string
	seen := 0

	s := NewScheduler(
		recordSystem{name: "a", log: &order, event: EventCakeEaten},
		nil,
		recordSystem{name: "b", log: &order},
		countEvents{seen: &seen},
	)
	if len(s.Systems()) != 3 {
		t.Fatalf("expected nil system to be skipped, got %d systems", len(s.Systems()))
	}

	s.Update(w)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if seen != 1 {
		t.Fatalf("expected later system to see 1 event, saw %d", seen)
	}
	if n := len(w.Events().Pending()); n != 0 {
		t.Fatalf("expected events flushed after tick, got %d", n)
	}

	s.Update(w)
	if seen != 2 {
		t.Fatalf("expected one new event on second tick, saw %d total", seen)
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventCakeSpawned})
	q.Push(Event{Type: EventGameOver})

	got := q.Drain()
	if len(got) != 2 || got[0].Type != EventCakeSpawned || got[1].Type != EventGameOver {
		t.Fatalf("unexpected drain %v", got)
	}
	if q.Drain() != nil {
		t.Fatal("expected empty queue after drain")
	}

	var nilQ *EventQueue
	nilQ.Push(Event{Type: EventCakeEaten})
	if nilQ.Pending() != nil {
		t.Fatal("nil queue should report no events")
	}
}
