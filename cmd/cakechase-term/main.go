// Command cakechase-term plays the board top-down in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/cakechase/config"
	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
	"github.com/milk9111/cakechase/ecs/entity"
	"github.com/milk9111/cakechase/ecs/system"
	"github.com/milk9111/cakechase/prefabs"
	"github.com/milk9111/cakechase/sfx"
)

const (
	tickRate = 30
	// Terminals only report key presses, so an arrow counts as held for a
	// while after its last repeat.
	arrowHold = 150 * time.Millisecond
)

var (
	tileStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkOliveGreen)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	cakeStyle   = tcell.StyleDefault.Foreground(tcell.ColorHotPink).Bold(true)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

type termGame struct {
	screen tcell.Screen
	spec   prefabs.GameSpec
	rng    *rand.Rand
	sound  *sfx.SpeakerPlayer

	world    *ecs.World
	session  ecs.Entity
	pipeline *system.Pipeline

	arrows  map[tcell.Key]time.Time
	pending component.Input
	paused  bool
}

func newTermGame(spec prefabs.GameSpec, seed int64) (*termGame, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &termGame{
		screen: screen,
		spec:   spec,
		rng:    rand.New(rand.NewSource(seed)),
		arrows: make(map[tcell.Key]time.Time),
	}

	sound, err := sfx.NewSpeakerPlayer()
	if err != nil {
		log.Printf("term: audio disabled: %v", err)
	} else {
		g.sound = sound
	}

	opts := system.PipelineOptions{
		Input: system.InputSourceFunc(g.poll),
		TPS:   tickRate,
		Rand:  g.rng,
	}
	if g.sound != nil {
		opts.Sound = g.sound
	}
	g.pipeline = system.NewPipeline(opts)

	if err := g.reset(); err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

func (g *termGame) reset() error {
	w := ecs.NewWorld()
	session, err := entity.NewSession(w, g.spec, g.rng)
	if err != nil {
		return fmt.Errorf("term: new session: %w", err)
	}
	g.world, g.session = w, session
	g.paused = false
	return nil
}

func (g *termGame) close() {
	g.sound.Close()
	g.screen.Fini()
}

// poll builds the frame input from latched arrows and one-shot keys.
func (g *termGame) poll() component.Input {
	now := time.Now()
	held := func(k tcell.Key) bool {
		t, ok := g.arrows[k]
		return ok && now.Sub(t) < arrowHold
	}
	in := g.pending
	in.Up = held(tcell.KeyUp)
	in.Down = held(tcell.KeyDown)
	in.Left = held(tcell.KeyLeft)
	in.Right = held(tcell.KeyRight)
	g.pending = component.Input{}
	return in
}

// handle reports false when the player asked to quit.
func (g *termGame) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
			g.arrows[ev.Key()] = time.Now()
		case tcell.KeyEnter:
			g.pending.RestartPressed = true
		case tcell.KeyEscape:
			g.pending.PausePressed = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'p':
				g.pending.PausePressed = true
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *termGame) gameOver() bool {
	phase, ok := ecs.Get(g.world, g.session, component.GamePhaseComponent.Kind())
	return ok && phase.Phase == component.PhaseGameOver
}

func (g *termGame) step() {
	if g.gameOver() && g.pending.RestartPressed {
		if err := g.reset(); err != nil {
			log.Printf("term: %v", err)
		}
		g.pending = component.Input{}
		return
	}
	if g.pending.PausePressed && !g.gameOver() {
		g.paused = !g.paused
		g.pending.PausePressed = false
	}
	if g.paused {
		g.pending = component.Input{}
		return
	}
	g.pipeline.Update(g.world)
}

func (g *termGame) draw() {
	g.screen.Clear()

	board, ok := ecs.Get(g.world, g.session, component.BoardComponent.Kind())
	if !ok {
		g.screen.Show()
		return
	}
	// Rows run along i with +i at the top; columns along j, two cells wide.
	cell := func(i, j float64) (int, int) {
		ci, cj := board.CellIndex(i, j)
		return cj*2 + 1, board.SizeI - 1 - ci
	}
	for j := 0; j < board.SizeJ; j++ {
		for i := 0; i < board.SizeI; i++ {
			x, y := cell(float64(i), float64(j))
			g.screen.SetContent(x, y, '·', nil, tileStyle)
		}
	}

	if cake, ok := ecs.Get(g.world, g.session, component.CakeComponent.Kind()); ok && cake.Present() {
		x, y := cell(cake.I, cake.J)
		g.screen.SetContent(x, y, '●', nil, cakeStyle)
	}
	ecs.ForEach(g.world, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		x, y := cell(p.I, p.J)
		g.screen.SetContent(x, y, facingGlyph(p.Rotation), nil, playerStyle)
	})

	lines := []string{}
	if display, ok := ecs.Get(g.world, g.session, component.DisplayComponent.Kind()); ok {
		lines = strings.Split(display.Text, "\n")
	}
	if g.paused {
		lines = append(lines, "PAUSED (esc to resume)")
	}
	lines = append(lines, "arrows move, esc pause, enter restart, q quit")
	for row, line := range lines {
		drawString(g.screen, 1, board.SizeI+1+row, line, hudStyle)
	}
	g.screen.Show()
}

func facingGlyph(rot float64) rune {
	switch {
	case math.Abs(rot-math.Pi/2) < 1e-6:
		return '^'
	case math.Abs(rot+math.Pi/2) < 1e-6:
		return 'v'
	case math.Abs(math.Abs(rot)-math.Pi) < 1e-6:
		return '<'
	default:
		return '>'
	}
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func (g *termGame) run() {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handle(ev) {
				return
			}
		case <-ticker.C:
			g.step()
			g.draw()
		}
	}
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("env: %v", err)
	}
	opts := config.Bind(flag.CommandLine)
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// The terminal belongs to tcell while the game runs.
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cakechase-term: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	spec, err := prefabs.LoadGameSpec()
	if err == nil {
		spec, err = opts.Apply(spec)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cakechase-term: %v\n", err)
		os.Exit(1)
	}

	game, err := newTermGame(spec, opts.ResolvedSeed())
	if err != nil {
		fmt.Fprintf(os.Stderr, "cakechase-term: %v\n", err)
		os.Exit(1)
	}
	defer game.close()

	game.run()
}
