package obj

import (
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/tilecam/common"
	"github.com/milk9111/tilecam/levels"
	"github.com/milk9111/tilecam/render"
	"golang.org/x/image/draw"
)

// fixedObject is a GameObject that never moves.
type fixedObject struct {
	pos common.Vector2[float64]
}

func (f *fixedObject) Position() common.Vector2[float64]     { return f.pos }
func (f *fixedObject) Update()                               {}
func (f *fixedObject) Draw(dst draw.Image, vp *GameViewport) {}

func tileColor(id int) color.RGBA {
	return color.RGBA{R: uint8(10 + id*10), G: uint8(id), B: 0x40, A: 0xff}
}

// newTestAtlas builds an atlas of cols x rows tiles, each a solid tileColor.
func newTestAtlas(t *testing.T, tileSize, cols, rows int) *render.Atlas {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, cols*tileSize, rows*tileSize))
	for id := 0; id < cols*rows; id++ {
		col, row := id%cols, id/cols
		r := image.Rect(col*tileSize, row*tileSize, (col+1)*tileSize, (row+1)*tileSize)
		draw.Draw(img, r, image.NewUniform(tileColor(id)), image.Point{}, draw.Src)
	}
	atlas, err := render.NewAtlas(img, tileSize)
	if err != nil {
		t.Fatalf("new atlas: %v", err)
	}
	return atlas
}

// newTestData builds a cols x rows grid whose cells come from id(row, col).
func newTestData(t *testing.T, cols, rows, tileSize int, id func(row, col int) int) *levels.MapData {
	t.Helper()
	data := make([]int, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			data = append(data, id(row, col))
		}
	}
	m, err := levels.FromLevel(levels.Level{
		Width:       cols,
		Height:      rows,
		TileWidth:   tileSize,
		Orientation: "orthogonal",
		Layers:      []levels.Layer{{Data: data}},
	})
	if err != nil {
		t.Fatalf("build map data: %v", err)
	}
	return m
}

func newTestTileMap(t *testing.T, cols, rows int, id func(row, col int) int) *TileMap {
	t.Helper()
	tm, err := NewTileMap(newTestAtlas(t, 32, 4, 4), newTestData(t, cols, rows, 32, id))
	if err != nil {
		t.Fatalf("new tilemap: %v", err)
	}
	return tm
}

func viewportAt(x, y float64, w, h int) *GameViewport {
	vp := NewGameViewport(&fixedObject{pos: common.Vec2(x, y)}, w, h)
	vp.Update()
	return vp
}

func approxEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
