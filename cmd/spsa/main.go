package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilecam/common"
	"github.com/milk9111/tilecam/obj"
	"github.com/milk9111/tilecam/prefabs"
	"github.com/milk9111/tilecam/render"
	"golang.org/x/image/draw"
)

const previewSize = 256

// pinned is a camera that never moves, so the sprite's world position is
// its screen position.
type pinned struct{}

func (pinned) Position() common.Vector2[float64] {
	return common.Vec2(float64(previewSize)/2, float64(previewSize)/2)
}

func (pinned) Update()                                   {}
func (pinned) Draw(dst draw.Image, vp *obj.GameViewport) {}

type previewGame struct {
	sprite   *obj.Sprite
	viewport *obj.GameViewport
	frame    *image.RGBA
}

func (g *previewGame) Update() error {
	g.sprite.Update()
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	render.Fill(g.frame, color.RGBA{0x00, 0x00, 0x00, 0xff})
	g.sprite.Draw(g.frame, g.viewport)
	render.DebugText(g.frame, fmt.Sprintf("frame %d/%d", g.sprite.Frame()+1, g.sprite.FrameCount()), 8, 16, color.White)
	screen.WritePixels(g.frame.Pix)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	imagePath := flag.String("image", "", "sprite strip to preview (defaults to the sprite spec's image)")
	frameW := flag.Int("fw", 0, "frame width (defaults to the sprite spec)")
	frameH := flag.Int("fh", 0, "frame height (defaults to the sprite spec)")
	ticks := flag.Int("ticks", 0, "updates per frame (defaults to the sprite spec)")
	flag.Parse()

	spec, err := prefabs.LoadSpec[prefabs.SpriteSpec]("sprite.yaml")
	if err != nil {
		log.Fatalf("failed to load sprite spec: %v", err)
	}
	if *imagePath != "" {
		spec.Image = *imagePath
	}
	if *frameW > 0 {
		spec.FrameW = *frameW
	}
	if *frameH > 0 {
		spec.FrameH = *frameH
	}
	if *ticks > 0 {
		spec.TicksPerFrame = *ticks
	}
	spec.Frame = 0

	sprite, err := obj.LoadSprite(spec)
	if err != nil {
		log.Fatalf("failed to load sprite: %v", err)
	}
	w, h := spec.FrameW, spec.FrameH
	if w <= 0 || h <= 0 {
		w, h = sprite.Size()
	}
	sprite.SetPosition(common.Vec2(float64(previewSize-w)/2, float64(previewSize-h)/2))

	vp := obj.NewGameViewport(pinned{}, previewSize, previewSize)
	vp.Update()

	g := &previewGame{
		sprite:   sprite,
		viewport: vp,
		frame:    image.NewRGBA(image.Rect(0, 0, previewSize, previewSize)),
	}
	ebiten.SetWindowSize(previewSize*2, previewSize*2)
	ebiten.SetWindowTitle("Sprite Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
