package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/tilecam/input"
	"github.com/milk9111/tilecam/obj"
	"github.com/milk9111/tilecam/prefabs"
)

func main() {
	levelName := flag.String("level", "", "level name in levels/ or a path to a level file")
	debug := flag.Bool("debug", false, "draw the debug overlay")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("failed to load specs: %v", err)
	}
	if *debug {
		spec.Camera.Debug = true
	}

	scene, err := obj.LoadScene(spec, *levelName)
	if err != nil {
		log.Fatalf("failed to load scene: %v", err)
	}
	if spec.Sprite.Image != "" {
		if sprite, err := obj.LoadSprite(spec.Sprite); err != nil {
			log.Printf("skipping sprite: %v", err)
		} else {
			scene.AddSprite(sprite)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	run(screen, scene, spec)
}

func run(screen tcell.Screen, scene *obj.Scene, spec *prefabs.GameSpec) {
	w, h := scene.ScreenSize()
	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	touches := input.NewQueue()
	quit := make(chan struct{})

	go pollEvents(screen, touches, quit, w, h)

	ticker := time.NewTicker(time.Second / time.Duration(spec.Camera.UpdatesPerSecond))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-quit:
			return
		case now := <-ticker.C:
			if dt := now.Sub(last).Seconds(); dt > 0 {
				scene.SetFPS(1 / dt)
			}
			last = now

			touches.Drain(func(e input.Event) { scene.HandleTouch(e) })
			scene.Update()
			scene.Draw(frame)

			cols, rows := screen.Size()
			v := newView(w, h, cols, rows)
			v.draw(screen, frame)
			cam := scene.Camera().Position()
			a := scene.Joystick().Actuator()
			v.drawStatus(screen, fmt.Sprintf(" camera %.0f, %.0f  stick %.2f, %.2f  drag the stick with the mouse, q quits", cam.X, cam.Y, a.X, a.Y))
			screen.Show()
		}
	}
}

// pollEvents turns terminal mouse input into touch events until the
// screen is finalized or the user quits.
func pollEvents(screen tcell.Screen, touches *input.Queue, quit chan<- struct{}, frameW, frameH int) {
	pressed := false
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				close(quit)
				return
			}
		case *tcell.EventMouse:
			cols, rows := screen.Size()
			cx, cy := ev.Position()
			x, y := newView(frameW, frameH, cols, rows).cellToFrame(cx, cy)

			down := ev.Buttons()&tcell.Button1 != 0
			switch {
			case down && !pressed:
				pressed = true
				touches.Push(input.Event{Kind: input.Press, X: x, Y: y})
			case down:
				touches.Push(input.Event{Kind: input.Move, X: x, Y: y})
			case pressed:
				pressed = false
				touches.Push(input.Event{Kind: input.Release, X: x, Y: y})
			}
		}
	}
}
