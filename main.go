package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cakechase/config"
	"github.com/milk9111/cakechase/prefabs"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("env: %v", err)
	}
	opts := config.Bind(flag.CommandLine)
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	spec, err = opts.Apply(spec)
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle(spec.Name)

	game, err := NewGame(spec, *opts)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
