package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilecam/input"
)

// pointerState follows a single pointer: the first touch that goes down,
// or the left mouse button when no touch is active.
type pointerState struct {
	touchID  ebiten.TouchID
	touching bool
	mouse    bool
	lastX    int
	lastY    int

	justPressed []ebiten.TouchID
}

func (p *pointerState) reset() {
	p.touching = false
	p.mouse = false
}

// poll returns the touch events produced since the last frame.
func (p *pointerState) poll() []input.Event {
	var events []input.Event

	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			events = append(events, input.Event{Kind: input.Release, X: float64(p.lastX), Y: float64(p.lastY)})
		} else if x, y := ebiten.TouchPosition(p.touchID); x != p.lastX || y != p.lastY {
			p.lastX, p.lastY = x, y
			events = append(events, input.Event{Kind: input.Move, X: float64(x), Y: float64(y)})
		}
	}

	p.justPressed = inpututil.AppendJustPressedTouchIDs(p.justPressed[:0])
	if !p.touching && !p.mouse && len(p.justPressed) > 0 {
		p.touchID = p.justPressed[0]
		p.touching = true
		p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
		events = append(events, input.Event{Kind: input.Press, X: float64(p.lastX), Y: float64(p.lastY)})
	}
	if p.touching {
		return events
	}

	switch {
	case !p.mouse && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.mouse = true
		p.lastX, p.lastY = ebiten.CursorPosition()
		events = append(events, input.Event{Kind: input.Press, X: float64(p.lastX), Y: float64(p.lastY)})
	case p.mouse && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.mouse = false
		events = append(events, input.Event{Kind: input.Release, X: float64(p.lastX), Y: float64(p.lastY)})
	case p.mouse:
		if x, y := ebiten.CursorPosition(); x != p.lastX || y != p.lastY {
			p.lastX, p.lastY = x, y
			events = append(events, input.Event{Kind: input.Move, X: float64(x), Y: float64(y)})
		}
	}
	return events
}
