package obj

import (
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilecam/common"
)

// GameViewport maps world coordinates to screen coordinates around the
// camera. The offset is sampled once per Update so every draw in a frame
// sees the same transform.
type GameViewport struct {
	camera        GameObject
	widthPixels   int
	heightPixels  int
	displayCentre common.Vector2[float64]
	offset        common.Vector2[float64]
}

func NewGameViewport(camera GameObject, widthPixels, heightPixels int) *GameViewport {
	return &GameViewport{
		camera:        camera,
		widthPixels:   widthPixels,
		heightPixels:  heightPixels,
		displayCentre: common.Vec2(float64(widthPixels)/2, float64(heightPixels)/2),
	}
}

func (vp *GameViewport) WidthPixels() int  { return vp.widthPixels }
func (vp *GameViewport) HeightPixels() int { return vp.heightPixels }

// Update samples the camera position. Call after the camera's Update.
func (vp *GameViewport) Update() {
	if vp.camera == nil {
		return
	}
	vp.offset = vp.displayCentre.Sub(vp.camera.Position())
}

// Offset is the world-to-screen translation for the current frame.
func (vp *GameViewport) Offset() common.Vector2[float64] {
	return vp.offset
}

func (vp *GameViewport) WorldToScreenX(x float64) float64 {
	return x + vp.offset.X
}

func (vp *GameViewport) WorldToScreenY(y float64) float64 {
	return y + vp.offset.Y
}

func (vp *GameViewport) WorldToScreen(v common.Vector2[float64]) common.Vector2[float64] {
	return v.Add(vp.offset)
}

func (vp *GameViewport) ScreenToWorld(v common.Vector2[float64]) common.Vector2[float64] {
	return v.Sub(vp.offset)
}

// VisibleWorldRect is the world rectangle on screen, computed from the
// camera's current position rather than the cached offset. B is the top
// edge (y grows downward).
func (vp *GameViewport) VisibleWorldRect() cp.BB {
	var c common.Vector2[float64]
	if vp.camera != nil {
		c = vp.camera.Position()
	}
	halfW := float64(vp.widthPixels) / 2
	halfH := float64(vp.heightPixels) / 2
	return cp.BB{L: c.X - halfW, B: c.Y - halfH, R: c.X + halfW, T: c.Y + halfH}
}

// DisplayRect is the full screen rectangle.
func (vp *GameViewport) DisplayRect() image.Rectangle {
	return image.Rect(0, 0, vp.widthPixels, vp.heightPixels)
}
