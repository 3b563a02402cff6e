package obj

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilecam/common"
	"github.com/milk9111/tilecam/render"
	"golang.org/x/image/draw"
)

var (
	outerCircleColor = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	innerCircleColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// Joystick turns touch positions into an actuator vector of length <= 1.
// State is guarded so input may be delivered from another goroutine.
type Joystick struct {
	mu sync.RWMutex

	outerCenter common.Vector2[int]
	outerRadius int
	innerCenter common.Vector2[int]
	innerRadius int

	actuator common.Vector2[float64]
	pressed  bool
}

func NewJoystick(outerCenter common.Vector2[int], outerRadius, innerRadius int) *Joystick {
	return &Joystick{
		outerCenter: outerCenter,
		outerRadius: outerRadius,
		innerCenter: outerCenter,
		innerRadius: innerRadius,
	}
}

func (j *Joystick) OuterCenter() common.Vector2[int] { return j.outerCenter }
func (j *Joystick) OuterRadius() int                 { return j.outerRadius }

// IsPressedAt reports whether p lies strictly inside the outer circle.
func (j *Joystick) IsPressedAt(p common.Vector2[float64]) bool {
	return common.Distance(j.outerCenter, p) < float64(j.outerRadius)
}

func (j *Joystick) SetPressed(pressed bool) {
	j.mu.Lock()
	j.pressed = pressed
	j.mu.Unlock()
}

func (j *Joystick) Pressed() bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.pressed
}

// SetActuator deflects the stick toward p. Inside the outer radius the
// deflection is proportional; at or beyond it the actuator is a unit vector.
func (j *Joystick) SetActuator(p common.Vector2[float64]) {
	a := j.actuatorFor(p)
	j.mu.Lock()
	j.actuator = a
	j.mu.Unlock()
}

// MoveIfPressed deflects the stick toward p only while it is pressed. The
// check and the write happen under one lock, so a concurrent Release can
// never leave the stick deflected but unpressed.
func (j *Joystick) MoveIfPressed(p common.Vector2[float64]) bool {
	a := j.actuatorFor(p)
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.pressed {
		return false
	}
	j.actuator = a
	return true
}

// Release clears the pressed flag and the actuator together and reports
// whether the stick was pressed.
func (j *Joystick) Release() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	was := j.pressed
	j.pressed = false
	j.actuator = common.Vector2[float64]{}
	return was
}

func (j *Joystick) ResetActuator() {
	j.mu.Lock()
	j.actuator = common.Vector2[float64]{}
	j.mu.Unlock()
}

func (j *Joystick) actuatorFor(p common.Vector2[float64]) common.Vector2[float64] {
	delta := common.ToCP(p.Sub(common.Convert[float64](j.outerCenter)))
	dist := delta.Length()

	var a cp.Vector
	if j.outerRadius > 0 && dist > 0 {
		scale := max(dist, float64(j.outerRadius))
		a = cp.Vector{X: delta.X / scale, Y: delta.Y / scale}
	}
	return common.FromCP(a)
}

// Actuator returns a copy of the current actuator.
func (j *Joystick) Actuator() common.Vector2[float64] {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.actuator
}

func (j *Joystick) InnerCenter() common.Vector2[int] {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.innerCenter
}

// Update moves the inner circle to follow the actuator. Visual only.
func (j *Joystick) Update() {
	j.mu.Lock()
	defer j.mu.Unlock()
	r := float64(j.outerRadius)
	j.innerCenter = common.Vec2(
		int(float64(j.outerCenter.X)+j.actuator.X*r),
		int(float64(j.outerCenter.Y)+j.actuator.Y*r),
	)
}

func (j *Joystick) Draw(dst draw.Image) {
	inner := j.InnerCenter()
	render.FillCircle(dst, image.Pt(j.outerCenter.X, j.outerCenter.Y), j.outerRadius, outerCircleColor)
	render.FillCircle(dst, image.Pt(inner.X, inner.Y), j.innerRadius, innerCircleColor)
}

// actuatorMagnitude is used by the debug overlay.
func (j *Joystick) actuatorMagnitude() float64 {
	a := j.Actuator()
	return math.Hypot(a.X, a.Y)
}
