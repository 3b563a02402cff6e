package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/tilecam/input"
	"github.com/milk9111/tilecam/obj"
	"github.com/milk9111/tilecam/prefabs"
	xdraw "golang.org/x/image/draw"
)

func main() {
	scriptName := flag.String("script", "flythrough", "touch script (embedded name or path to a .tengo file)")
	levelName := flag.String("level", "", "level name in levels/ or a path to a level file")
	frames := flag.Int("frames", 360, "number of frames to simulate")
	every := flag.Int("every", 30, "write every n-th frame")
	outDir := flag.String("out", "captures", "output directory for PNG frames")
	scale := flag.Float64("scale", 1, "scale factor applied to written frames")
	debug := flag.Bool("debug", false, "draw the debug overlay into captures")
	flag.Parse()

	if *every <= 0 {
		log.Fatalf("-every must be positive, got %d", *every)
	}
	if *scale <= 0 {
		log.Fatalf("-scale must be positive, got %f", *scale)
	}

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

	src, err := prefabs.LoadScript(*scriptName)
	if err != nil {
		log.Fatalf("failed to load script %s: %v", *scriptName, err)
	}
	script, err := input.NewScript(*scriptName, src, spec.Screen.Width, spec.Screen.Height)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create %s: %v", *outDir, err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, spec.Screen.Width, spec.Screen.Height))
	written := 0
	for i := 0; i < *frames; i++ {
		if script != nil {
			events, err := script.Step(i)
			if err != nil {
				// Keep rendering with the stick released.
				log.Printf("script error, stopping input: %v", err)
				script = nil
				events = []input.Event{{Kind: input.Release}}
			}
			for _, e := range events {
				scene.HandleTouch(e)
			}
		}
		scene.SetFPS(float64(spec.Camera.UpdatesPerSecond))
		scene.Update()

		if i%*every != 0 {
			continue
		}
		scene.Draw(frame)
		path := filepath.Join(*outDir, fmt.Sprintf("frame_%05d.png", i))
		if err := writePNG(path, frame, *scale); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		written++
	}

	cam := scene.Camera().Position()
	log.Printf("wrote %d frames to %s, camera ended at (%.1f, %.1f)", written, *outDir, cam.X, cam.Y)
}

func writePNG(path string, img *image.RGBA, scale float64) error {
	var out image.Image = img
	if scale != 1 {
		b := img.Bounds()
		w := max(int(float64(b.Dx())*scale), 1)
		h := max(int(float64(b.Dy())*scale), 1)
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)
		out = scaled
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
