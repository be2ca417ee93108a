package system

import (
	"testing"
	"time"

	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
)

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		name  string
		clock component.Clock
		p     component.Player
		score component.Score
		phase component.Phase
		want  string
	}{
		{
			name: "start",
			p:    component.Player{I: 7, J: 10},
			want: "time: 0.00\nposition: 7.00, 10.00\nrotation: 0.00\nscore: 0 (eaten 0)",
		},
		{
			name:  "moving",
			clock: component.Clock{Elapsed: 12340 * time.Millisecond},
			p:     component.Player{I: 7, J: 10.1, Rotation: -1.5707963},
			score: component.Score{Score: -1, Eaten: 1},
			want:  "time: 12.34\nposition: 7.00, 10.10\nrotation: -1.57\nscore: -1 (eaten 1)",
		},
		{
			name:  "game_over",
			clock: component.Clock{Elapsed: 20 * time.Second},
			p:     component.Player{I: 1, J: 2},
			score: component.Score{Score: -6},
			phase: component.PhaseGameOver,
			want:  "time: 20.00\nposition: 1.00, 2.00\nrotation: 0.00\nscore: -6 (eaten 0)\nGAME OVER",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatDisplay(&tc.clock, &tc.p, &tc.score, &component.GamePhase{Phase: tc.phase})
			if got != tc.want {
				t.Fatalf("got %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestDisplaySystemWritesSessionText(t *testing.T) {
	s := newTestSession(t, nil)
	s.frame(1500*time.Millisecond, NewDisplaySystem())

	display, ok := ecs.Get(s.w, s.session, component.DisplayComponent.Kind())
	if !ok {
		t.Fatal("missing display")
	}
	want := "time: 1.50\nposition: 7.00, 10.00\nrotation: 0.00\nscore: 0 (eaten 0)"
	if display.Text != want {
		t.Fatalf("got %q\nwant %q", display.Text, want)
	}
}
