package input

import (
	"fmt"

	"github.com/milk9111/tilecam/common"
)

type Kind int

const (
	Press Kind = iota
	Move
	Release
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// Event is a single touch transition in screen coordinates.
type Event struct {
	Kind Kind
	X    float64
	Y    float64
}

func (e Event) Position() common.Vector2[float64] {
	return common.Vec2(e.X, e.Y)
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%.1f, %.1f)", e.Kind, e.X, e.Y)
}
