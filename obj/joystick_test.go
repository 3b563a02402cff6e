package obj

import (
	"math"
	"sync"
	"testing"

	"github.com/milk9111/tilecam/common"
)

func TestJoystickIsPressedAt(t *testing.T) {
	j := NewJoystick(common.Vec2(100, 100), 50, 38)

	cases := []struct {
		name string
		p    common.Vector2[float64]
		want bool
	}{
		{"center", common.Vec2(100.0, 100.0), true},
		{"just_inside", common.Vec2(149.0, 100.0), true},
		{"on_radius", common.Vec2(150.0, 100.0), false},
		{"outside", common.Vec2(200.0, 200.0), false},
		{"diagonal_inside", common.Vec2(130.0, 130.0), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := j.IsPressedAt(c.p); got != c.want {
				t.Fatalf("IsPressedAt(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}

	if j.Pressed() {
		t.Fatalf("IsPressedAt must not change the pressed state")
	}
}

func TestJoystickSetActuator(t *testing.T) {
	cases := []struct {
		name         string
		p            common.Vector2[float64]
		want         common.Vector2[float64]
		wantMagBelow bool
	}{
		{"half_right", common.Vec2(125.0, 100.0), common.Vec2(0.5, 0.0), true},
		{"half_up", common.Vec2(100.0, 75.0), common.Vec2(0.0, -0.5), true},
		{"on_radius", common.Vec2(150.0, 100.0), common.Vec2(1.0, 0.0), false},
		{"far_right", common.Vec2(400.0, 100.0), common.Vec2(1.0, 0.0), false},
		{"far_down", common.Vec2(100.0, 1000.0), common.Vec2(0.0, 1.0), false},
		{"center", common.Vec2(100.0, 100.0), common.Vec2(0.0, 0.0), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			j := NewJoystick(common.Vec2(100, 100), 50, 38)
			j.SetActuator(c.p)
			a := j.Actuator()
			if !approxEqual(a.X, c.want.X) || !approxEqual(a.Y, c.want.Y) {
				t.Fatalf("actuator = %v, want %v", a, c.want)
			}
			mag := a.Length()
			if c.wantMagBelow && mag >= 1 {
				t.Fatalf("expected magnitude < 1 inside radius, got %f", mag)
			}
			if !c.wantMagBelow && !approxEqual(mag, 1) {
				t.Fatalf("expected unit magnitude outside radius, got %f", mag)
			}
		})
	}
}

func TestJoystickActuatorNeverExceedsOne(t *testing.T) {
	j := NewJoystick(common.Vec2(60, 460), 50, 38)
	for angle := 0.0; angle < 2*math.Pi; angle += 0.1 {
		for _, dist := range []float64{1, 25, 49.9, 50, 75, 5000} {
			j.SetActuator(common.Vec2(60+math.Cos(angle)*dist, 460+math.Sin(angle)*dist))
			if mag := j.Actuator().Length(); mag > 1+1e-9 {
				t.Fatalf("magnitude %f > 1 at angle %f dist %f", mag, angle, dist)
			}
		}
	}
}

func TestJoystickResetActuator(t *testing.T) {
	j := NewJoystick(common.Vec2(100, 100), 50, 38)
	j.SetPressed(true)
	j.SetActuator(common.Vec2(140.0, 130.0))
	if j.Actuator().IsZero() {
		t.Fatalf("expected non-zero actuator before reset")
	}

	j.ResetActuator()
	if a := j.Actuator(); !a.IsZero() {
		t.Fatalf("expected zero actuator after reset, got %v", a)
	}
	if !j.Pressed() {
		t.Fatalf("reset must not clear the pressed flag")
	}
}

func TestJoystickUpdateMovesInnerCircle(t *testing.T) {
	j := NewJoystick(common.Vec2(100, 100), 50, 38)
	j.Update()
	if got := j.InnerCenter(); got != common.Vec2(100, 100) {
		t.Fatalf("idle inner center = %v, want (100, 100)", got)
	}

	j.SetActuator(common.Vec2(400.0, 100.0))
	j.Update()
	if got := j.InnerCenter(); got != common.Vec2(150, 100) {
		t.Fatalf("deflected inner center = %v, want (150, 100)", got)
	}
}

func TestJoystickActuatorIsCopy(t *testing.T) {
	j := NewJoystick(common.Vec2(100, 100), 50, 38)
	j.SetActuator(common.Vec2(125.0, 100.0))
	a := j.Actuator()
	a.X = 9
	if got := j.Actuator(); got.X != 0.5 {
		t.Fatalf("mutating the returned actuator changed the joystick: %v", got)
	}
}

func TestJoystickMoveIfPressed(t *testing.T) {
	j := NewJoystick(common.Vec2(100, 100), 50, 38)
	if j.MoveIfPressed(common.Vec2(125.0, 100.0)) {
		t.Fatalf("move on an unpressed stick must not be consumed")
	}
	if a := j.Actuator(); !a.IsZero() {
		t.Fatalf("unpressed move deflected the stick: %v", a)
	}

	j.SetPressed(true)
	if !j.MoveIfPressed(common.Vec2(125.0, 100.0)) {
		t.Fatalf("expected move to be consumed while pressed")
	}
	if got := j.Actuator(); got != common.Vec2(0.5, 0.0) {
		t.Fatalf("expected (0.5, 0.0), got %v", got)
	}
}

func TestJoystickRelease(t *testing.T) {
	j := NewJoystick(common.Vec2(100, 100), 50, 38)
	if j.Release() {
		t.Fatalf("release of an idle stick reported pressed")
	}

	j.SetPressed(true)
	j.SetActuator(common.Vec2(140.0, 130.0))
	if !j.Release() {
		t.Fatalf("expected release to report the stick was pressed")
	}
	if j.Pressed() {
		t.Fatalf("expected stick to be unpressed after release")
	}
	if a := j.Actuator(); !a.IsZero() {
		t.Fatalf("expected zero actuator after release, got %v", a)
	}
}

func TestJoystickReleaseDuringMoves(t *testing.T) {
	j := NewJoystick(common.Vec2(100, 100), 50, 38)
	for i := 0; i < 200; i++ {
		j.SetPressed(true)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				j.MoveIfPressed(common.Vec2(130.0, 100.0+float64(k)))
			}
		}()
		go func() {
			defer wg.Done()
			j.Release()
		}()
		wg.Wait()

		if a := j.Actuator(); !j.Pressed() && !a.IsZero() {
			t.Fatalf("iteration %d: stick deflected to %v while unpressed", i, a)
		}
	}
}
