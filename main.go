package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilecam/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show the debug overlay and camera crosshair")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional) or a path to a level file")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("failed to load specs: %v", err)
	}
	for _, name := range prefabs.GameFiles {
		if t, ok := prefabs.ModTime(name); ok {
			log.Printf("using prefabs/%s from disk (modified %s)", name, t.Format(time.RFC3339))
		}
	}
	if *debug {
		spec.Camera.Debug = true
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.Screen.Width, spec.Screen.Height)
	ebiten.SetWindowTitle(spec.Screen.Title)
	ebiten.SetTPS(spec.Camera.UpdatesPerSecond)

	game, err := NewGame(spec, *levelName)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
