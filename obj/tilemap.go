package obj

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/milk9111/tilecam/common"
	"github.com/milk9111/tilecam/levels"
	"github.com/milk9111/tilecam/render"
	"golang.org/x/image/draw"
)

// DefaultWindowMargin is the number of extra tiles kept on each edge of
// the visible window so partially visible tiles never leave a seam.
const DefaultWindowMargin = 1

var ErrTileSizeMismatch = errors.New("obj: atlas tile size does not match map tile size")

// TileWindow is an inclusive range of grid indices.
type TileWindow struct {
	Left, Top, Right, Bottom int
}

func (w TileWindow) Empty() bool {
	return w.Left > w.Right || w.Top > w.Bottom
}

func (w TileWindow) Cols() int {
	if w.Empty() {
		return 0
	}
	return w.Right - w.Left + 1
}

func (w TileWindow) Rows() int {
	if w.Empty() {
		return 0
	}
	return w.Bottom - w.Top + 1
}

func (w TileWindow) Contains(row, col int) bool {
	return !w.Empty() && row >= w.Top && row <= w.Bottom && col >= w.Left && col <= w.Right
}

// DrawStats counts the cells handled by the last Draw.
type DrawStats struct {
	Window  TileWindow
	Drawn   int
	Skipped int
}

// TileMap composites the visible part of a tile grid from an atlas.
type TileMap struct {
	atlas   *render.Atlas
	data    *levels.MapData
	mapSize image.Rectangle
	margin  int

	scratch *image.RGBA
	stats   DrawStats
}

func NewTileMap(atlas *render.Atlas, data *levels.MapData) (*TileMap, error) {
	if atlas == nil || data == nil {
		return nil, fmt.Errorf("obj: tilemap needs an atlas and map data")
	}
	if atlas.TileSize() != data.TileSize() {
		return nil, fmt.Errorf("%w: atlas %d, map %d", ErrTileSizeMismatch, atlas.TileSize(), data.TileSize())
	}
	ts := data.TileSize()
	return &TileMap{
		atlas: atlas,
		data:  data,
		// The right edge extends one pixel past the last column.
		mapSize: image.Rect(0, 0, data.MaxRowIndex()*ts+1, data.MaxColumnIndex()*ts),
		margin:  DefaultWindowMargin,
	}, nil
}

// MapSize is the world-space rectangle covered by the map.
func (tm *TileMap) MapSize() image.Rectangle {
	return tm.mapSize
}

func (tm *TileMap) Data() *levels.MapData {
	return tm.data
}

func (tm *TileMap) SetMargin(margin int) {
	if margin < 0 {
		margin = 0
	}
	tm.margin = margin
}

func (tm *TileMap) Stats() DrawStats {
	return tm.stats
}

// VisibleWindow returns the grid cells intersecting the viewport, widened
// by the margin and clamped to the grid.
func (tm *TileMap) VisibleWindow(vp *GameViewport) TileWindow {
	cols, rows := tm.data.Cols(), tm.data.Rows()
	if cols == 0 || rows == 0 {
		return TileWindow{Left: 0, Top: 0, Right: -1, Bottom: -1}
	}
	ts := tm.data.TileSize()
	bb := vp.VisibleWorldRect()

	left := common.FloorDiv(int(math.Floor(bb.L)), ts) - tm.margin
	top := common.FloorDiv(int(math.Floor(bb.B)), ts) - tm.margin
	right := common.FloorDiv(int(math.Floor(bb.R)), ts) + tm.margin
	bottom := common.FloorDiv(int(math.Floor(bb.T)), ts) + tm.margin

	// A viewport entirely off the map must stay empty after clamping.
	if right < 0 || bottom < 0 || left > cols-1 || top > rows-1 {
		return TileWindow{Left: 0, Top: 0, Right: -1, Bottom: -1}
	}

	return TileWindow{
		Left:   common.ClampInt(left, 0, cols-1),
		Top:    common.ClampInt(top, 0, rows-1),
		Right:  common.ClampInt(right, 0, cols-1),
		Bottom: common.ClampInt(bottom, 0, rows-1),
	}
}

// Draw composites the visible tiles into a scratch buffer in screen space
// and blits it over dst's display rectangle. Empty cells and ids outside
// the atlas are skipped so the background shows through.
func (tm *TileMap) Draw(dst draw.Image, vp *GameViewport) {
	win := tm.VisibleWindow(vp)
	tm.stats = DrawStats{Window: win}
	if win.Empty() {
		return
	}

	ts := tm.data.TileSize()
	scratch := tm.scratchFor(win.Cols()*ts, win.Rows()*ts)
	src := tm.atlas.Image()

	for row := win.Top; row <= win.Bottom; row++ {
		for col := win.Left; col <= win.Right; col++ {
			id, ok := tm.data.TileAt(row, col)
			if !ok {
				tm.stats.Skipped++
				continue
			}
			sr, ok := tm.atlas.TileForSource(id)
			if !ok {
				tm.stats.Skipped++
				continue
			}
			dp := image.Pt(
				int(math.Floor(vp.WorldToScreenX(float64(col*ts)))),
				int(math.Floor(vp.WorldToScreenY(float64(row*ts)))),
			)
			draw.Copy(scratch, dp, src, sr, draw.Src, nil)
			tm.stats.Drawn++
		}
	}

	display := vp.DisplayRect().Add(dst.Bounds().Min)
	r := display.Intersect(scratch.Bounds().Add(display.Min))
	draw.Draw(dst, r, scratch, image.Point{}, draw.Over)
}

// scratchFor returns a cleared buffer of the given size, reusing the last
// one when the size is unchanged.
func (tm *TileMap) scratchFor(w, h int) *image.RGBA {
	if tm.scratch == nil || tm.scratch.Bounds().Dx() != w || tm.scratch.Bounds().Dy() != h {
		tm.scratch = image.NewRGBA(image.Rect(0, 0, w, h))
		return tm.scratch
	}
	clear(tm.scratch.Pix)
	return tm.scratch
}
