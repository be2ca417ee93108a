package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
)

// InputSource produces one frame of device state.
type InputSource interface {
	Poll() component.Input
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func() component.Input

func (f InputSourceFunc) Poll() component.Input { return f() }

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	polled := i.source.Poll()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = polled
	})
}

// EbitenInput polls keyboard and mouse through ebiten. Mouse motion is the
// cursor delta since the previous poll.
type EbitenInput struct {
	lastX, lastY int
	primed       bool
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (e *EbitenInput) Poll() component.Input {
	x, y := ebiten.CursorPosition()
	var delta cp.Vector
	if e.primed {
		delta = cp.Vector{X: float64(x - e.lastX), Y: float64(y - e.lastY)}
	}
	e.lastX, e.lastY, e.primed = x, y, true

	_, wheelY := ebiten.Wheel()

	return component.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),

		OrbitHeld:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		OrbitJustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		OrbitJustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
		Modifier:          ebiten.IsKeyPressed(ebiten.KeyShiftLeft),

		MouseDelta: delta,
		Scroll:     wheelY,

		CopyPressed:    inpututil.IsKeyJustPressed(ebiten.KeyC),
		PausePressed:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		RestartPressed: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}
