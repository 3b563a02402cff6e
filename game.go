package main

import (
	"fmt"
	"image"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilecam/input"
	"github.com/milk9111/tilecam/obj"
	"github.com/milk9111/tilecam/prefabs"
)

type Game struct {
	frames int
	paused bool

	spec  *prefabs.GameSpec
	scene *obj.Scene
	frame *image.RGBA

	pointer pointerState

	ui         *ebitenui.UI
	pausePanel *widget.Container
	status     *widget.Text
}

func NewGame(spec *prefabs.GameSpec, levelName string) (*Game, error) {
	scene, err := obj.LoadScene(spec, levelName)
	if err != nil {
		return nil, err
	}

	if spec.Sprite.Image != "" {
		sprite, err := obj.LoadSprite(spec.Sprite)
		if err != nil {
			log.Printf("skipping sprite: %v", err)
		} else {
			scene.AddSprite(sprite)
		}
	}

	g := &Game{
		spec:  spec,
		scene: scene,
		frame: image.NewRGBA(image.Rect(0, 0, spec.Screen.Width, spec.Screen.Height)),
	}
	g.ui, g.pausePanel, g.status = NewHUD(g)
	g.setPaused(false)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.scene.SetDebug(!g.scene.Debug())
	}

	if !g.paused {
		for _, e := range g.pointer.poll() {
			g.scene.HandleTouch(e)
		}
		g.scene.Update()
		g.frames++
	}

	g.scene.SetFPS(ebiten.ActualFPS())
	cam := g.scene.Camera().Position()
	stats := g.scene.Level().TileMap().Stats()
	g.status.Label = fmt.Sprintf("camera %.0f, %.0f  tiles %d", cam.X, cam.Y, stats.Drawn)

	g.ui.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(g.frame)
	screen.WritePixels(g.frame.Pix)
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Screen.Width, g.spec.Screen.Height
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.pausePanel.GetWidget().Visibility = widget.Visibility_Show
		// Drop the stick so the camera does not keep moving on resume.
		g.scene.HandleTouch(input.Event{Kind: input.Release})
		g.pointer.reset()
	} else {
		g.pausePanel.GetWidget().Visibility = widget.Visibility_Hide
	}
}
