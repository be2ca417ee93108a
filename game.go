package main

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/cakechase/assets"
	"github.com/milk9111/cakechase/config"
	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
	"github.com/milk9111/cakechase/ecs/entity"
	"github.com/milk9111/cakechase/ecs/system"
	"github.com/milk9111/cakechase/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	sfxVolume = 0.5
)

type Game struct {
	spec prefabs.GameSpec
	opts config.Options
	rng  *rand.Rand

	world    *ecs.World
	session  ecs.Entity
	pipeline *system.Pipeline
	render   *system.RenderSystem

	input *system.EbitenInput
	frame component.Input
	sound *assets.SoundBank

	watcher *prefabs.Watcher

	paused     bool
	pauseUI    *ebitenui.UI
	gameOverUI *GameOverUI
	hud        *HUD
}

func NewGame(spec prefabs.GameSpec, opts config.Options) (*Game, error) {
	sound, err := assets.NewSoundBank(sfxVolume)
	if err != nil {
		return nil, err
	}

	seed := opts.ResolvedSeed()
	log.Printf("game: seed %d", seed)

	g := &Game{
		spec:   spec,
		opts:   opts,
		rng:    rand.New(rand.NewSource(seed)),
		render: system.NewRenderSystem(),
		input:  system.NewEbitenInput(),
		sound:  sound,
	}

	g.pipeline = system.NewPipeline(system.PipelineOptions{
		Input:     system.InputSourceFunc(func() component.Input { return g.frame }),
		TPS:       ebiten.TPS(),
		Rand:      g.rng,
		Sound:     g.sound,
		Clipboard: true,
	})

	if err := g.reset(); err != nil {
		return nil, err
	}

	watcher, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
	if err != nil {
		log.Printf("game: hot reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	g.pauseUI = NewPauseUI(g)
	g.gameOverUI = NewGameOverUI(g)
	g.hud = NewHUD()
	return g, nil
}

// reset throws the world away and builds a fresh session from the current
// spec.
func (g *Game) reset() error {
	w := ecs.NewWorld()
	session, err := entity.NewSession(w, g.spec, g.rng)
	if err != nil {
		return fmt.Errorf("game: new session: %w", err)
	}
	g.world = w
	g.session = session
	g.paused = false
	g.render = system.NewRenderSystem()
	return nil
}

// restart is the menu action; errors keep the old session running.
func (g *Game) restart() {
	if err := g.reset(); err != nil {
		log.Printf("game: restart: %v", err)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) gameOver() bool {
	phase, ok := ecs.Get(g.world, g.session, component.GamePhaseComponent.Kind())
	return ok && phase.Phase == component.PhaseGameOver
}

func (g *Game) Update() error {
	g.frame = g.input.Poll()
	g.reload()
	g.step()
	return nil
}

// step runs one frame against the already polled input.
func (g *Game) step() {
	if g.gameOver() {
		if g.frame.RestartPressed {
			g.restart()
			return
		}
		if score, ok := ecs.Get(g.world, g.session, component.ScoreComponent.Kind()); ok {
			g.gameOverUI.SetScore(*score)
		}
		g.gameOverUI.Update()
	} else if g.frame.PausePressed {
		g.paused = !g.paused
	}

	if g.paused {
		g.pauseUI.Update()
		return
	}

	g.pipeline.Update(g.world)
	if display, ok := ecs.Get(g.world, g.session, component.DisplayComponent.Kind()); ok {
		g.hud.SetText(display.Text)
	}
	g.hud.Update()
}

// reload applies prefab edits picked up by the watcher.
func (g *Game) reload() {
	for _, name := range g.watcher.Poll() {
		switch {
		case prefabs.IsScriptFile(name):
			g.pipeline.Cake.ReloadScript()
			log.Printf("game: reloaded script %s", filepath.Base(name))
		case filepath.Base(name) == prefabs.GameSpecFile:
			spec, err := prefabs.LoadGameSpec()
			if err == nil {
				spec, err = g.opts.Apply(spec)
			}
			if err != nil {
				log.Printf("game: reload %s: %v", prefabs.GameSpecFile, err)
				continue
			}
			g.spec = spec
			if entity.ApplyTuning(g.world, g.session, spec) {
				log.Printf("game: retuned from %s", prefabs.GameSpecFile)
				continue
			}
			if err := g.reset(); err != nil {
				log.Printf("game: rebuild after board change: %v", err)
			}
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.render.Draw(g.world, screen)
	g.hud.Draw(screen)

	if g.gameOver() {
		g.gameOverUI.Draw(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()), baseWidth-180, 4)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
