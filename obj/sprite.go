package obj

import (
	"image"
	"math"

	"github.com/milk9111/tilecam/common"
	"golang.org/x/image/draw"
)

// Sprite draws one frame of a horizontal strip at a world position.
type Sprite struct {
	img           image.Image
	frameW        int
	frameH        int
	frameCount    int
	frame         int
	ticksPerFrame int
	tick          int
	position      common.Vector2[float64]
}

func NewSprite(img image.Image, frameW, frameH int) *Sprite {
	count := 1
	if img != nil && frameW > 0 {
		count = max(img.Bounds().Dx()/frameW, 1)
	}
	return &Sprite{img: img, frameW: frameW, frameH: frameH, frameCount: count}
}

func (s *Sprite) Position() common.Vector2[float64] {
	return s.position
}

func (s *Sprite) SetPosition(p common.Vector2[float64]) {
	s.position = p
}

func (s *Sprite) Frame() int      { return s.frame }
func (s *Sprite) FrameCount() int { return s.frameCount }

// SetFrame selects a frame, wrapping out-of-range values.
func (s *Sprite) SetFrame(f int) {
	s.frame = ((f % s.frameCount) + s.frameCount) % s.frameCount
}

// SetTicksPerFrame sets the animation speed. Zero keeps the sprite static.
func (s *Sprite) SetTicksPerFrame(n int) {
	s.ticksPerFrame = max(n, 0)
	s.tick = 0
}

// Size returns the size of the whole strip.
func (s *Sprite) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Sprite) Update() {
	if s.ticksPerFrame <= 0 || s.frameCount <= 1 {
		return
	}
	s.tick++
	if s.tick >= s.ticksPerFrame {
		s.tick = 0
		s.frame = (s.frame + 1) % s.frameCount
	}
}

func (s *Sprite) Draw(dst draw.Image, vp *GameViewport) {
	if s.img == nil || vp == nil {
		return
	}
	p := vp.WorldToScreen(s.position)
	origin := s.img.Bounds().Min
	sr := image.Rect(s.frameW*s.frame, 0, s.frameW*(s.frame+1), s.frameH).Add(origin)
	dp := image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
	draw.Copy(dst, dp, s.img, sr, draw.Over, nil)
}
