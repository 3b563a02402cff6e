package obj

import (
	"github.com/milk9111/tilecam/common"
	"golang.org/x/image/draw"
)

// GameObject is anything positioned in world space that updates once per
// tick and draws through the viewport.
type GameObject interface {
	Position() common.Vector2[float64]
	Update()
	Draw(dst draw.Image, vp *GameViewport)
}

// Updater is a per-tick step run by the Scheduler.
type Updater interface {
	Update()
}
