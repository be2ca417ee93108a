package component

import "time"

// Score counts points and successful eats for the session.
type Score struct {
	Score int
	Eaten int
}

var ScoreComponent = NewComponent[Score]()

// Clock is the frame clock. Delta is the time since the previous tick.
type Clock struct {
	Elapsed time.Duration
	Delta   time.Duration
	Frames  int
}

func (c *Clock) Seconds() float64 {
	if c == nil {
		return 0
	}
	return c.Elapsed.Seconds()
}

var ClockComponent = NewComponent[Clock]()

type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseGameOver:
		return "game_over"
	default:
		return "playing"
	}
}

type GamePhase struct {
	Phase Phase
}

var GamePhaseComponent = NewComponent[GamePhase]()

// Display is the HUD text rebuilt every frame.
type Display struct {
	Text string
}

var DisplayComponent = NewComponent[Display]()
