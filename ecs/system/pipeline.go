package system

import (
	"math/rand"
	"time"

	"github.com/milk9111/cakechase/ecs"
)

// PipelineOptions wires the front-end specific pieces into the shared
// per-frame pipeline.
type PipelineOptions struct {
	Input InputSource
	// TPS drives the clock at a fixed tick rate. When zero, Step returns
	// the frame delta, and with neither set the wall clock is used.
	TPS   int
	Step  func() time.Duration
	Rand  *rand.Rand
	Sound SoundPlayer
	// Clipboard enables copying the HUD with the copy key.
	Clipboard bool
}

// Pipeline is the ordered system list plus handles the game loop needs.
type Pipeline struct {
	*ecs.Scheduler
	Cake *CakeSystem
}

// NewPipeline declares the frame order: input, clock, movement, cake,
// camera, display, then the output side effects.
func NewPipeline(opts PipelineOptions) *Pipeline {
	var clock *ClockSystem
	if opts.TPS > 0 {
		clock = NewTickClockSystem(opts.TPS)
	} else if opts.Step != nil {
		clock = NewClockSystem(opts.Step)
	} else {
		clock = NewWallClockSystem()
	}
	cake := NewCakeSystem(opts.Rand)

	scheduler := ecs.NewScheduler(
		NewInputSystem(opts.Input),
		WhilePlaying(clock),
		WhilePlaying(NewGridMovementSystem()),
		WhilePlaying(cake),
		NewCameraRigSystem(),
		NewDisplaySystem(),
		NewAudioSystem(opts.Sound),
	)
	if opts.Clipboard {
		scheduler.Add(NewClipboardSystem())
	}
	return &Pipeline{Scheduler: scheduler, Cake: cake}
}
