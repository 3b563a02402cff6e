package obj

import (
	"image"
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilecam/common"
	"github.com/milk9111/tilecam/render"
	"golang.org/x/image/draw"
)

// MaxSpeed converts a speed in pixels per second to pixels per update.
func MaxSpeed(speedPixelsPerSecond, updatesPerSecond float64) float64 {
	if updatesPerSecond <= 0 {
		return 0
	}
	return speedPixelsPerSecond / updatesPerSecond
}

// Camera is a point steered by the joystick and kept inside the map.
type Camera struct {
	// Debug draws a crosshair at the camera center.
	Debug bool

	position common.Vector2[float64]
	velocity common.Vector2[float64]

	joystick *Joystick
	mapSize  image.Rectangle
	screenW  float64
	screenH  float64
	maxSpeed float64
}

// NewCamera creates a camera at the screen center.
func NewCamera(joystick *Joystick, mapSize image.Rectangle, screenW, screenH int, maxSpeed float64) *Camera {
	return &Camera{
		position: common.Vec2(float64(screenW)/2, float64(screenH)/2),
		joystick: joystick,
		mapSize:  mapSize,
		screenW:  float64(screenW),
		screenH:  float64(screenH),
		maxSpeed: maxSpeed,
	}
}

func (c *Camera) Position() common.Vector2[float64] {
	return c.position
}

// SetPosition places the camera without clamping; the next Update clamps.
func (c *Camera) SetPosition(p common.Vector2[float64]) {
	c.position = p
}

func (c *Camera) Velocity() common.Vector2[float64] {
	return c.velocity
}

func (c *Camera) MaxSpeed() float64 {
	return c.maxSpeed
}

// Update moves the camera by the joystick actuator and clamps it. On each
// axis where the map is smaller than the screen the camera is pinned to
// the screen center; otherwise it stops hard at the map edge.
func (c *Camera) Update() {
	var actuator common.Vector2[float64]
	if c.joystick != nil {
		actuator = c.joystick.Actuator()
	}
	c.velocity = actuator.Scale(c.maxSpeed)
	candidate := c.position.Add(c.velocity)

	halfW := c.screenW / 2
	halfH := c.screenH / 2
	m := c.mapSize
	allowed := cp.BB{
		L: float64(m.Min.X) + halfW,
		B: float64(m.Min.Y) + halfH,
		R: float64(m.Max.X) - halfW,
		T: float64(m.Max.Y) - halfH,
	}
	next := common.ClampToBB(candidate, allowed)

	if float64(m.Dx()) < c.screenW {
		next.X = halfW
	}
	if float64(m.Dy()) < c.screenH {
		next.Y = halfH
	}
	c.position = next
}

func (c *Camera) Draw(dst draw.Image, vp *GameViewport) {
	if !c.Debug || vp == nil {
		return
	}
	p := vp.WorldToScreen(c.position)
	render.Crosshair(dst, image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y))), 6, color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff})
}
