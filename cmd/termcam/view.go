package main

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// upperHalf shows the top pixel as foreground and the bottom pixel as
// background, giving two vertical pixels per cell.
const upperHalf = '▀'

// view maps a frame onto the terminal grid. The bottom row is kept for
// the status line.
type view struct {
	frameW, frameH int
	cols, rows     int
}

func newView(frameW, frameH, cols, rows int) view {
	return view{frameW: frameW, frameH: frameH, cols: max(cols, 1), rows: max(rows-1, 1)}
}

// cellToFrame returns the frame pixel at the centre of a terminal cell.
func (v view) cellToFrame(cx, cy int) (float64, float64) {
	x := (float64(cx) + 0.5) * float64(v.frameW) / float64(v.cols)
	y := (float64(cy) + 0.5) * float64(v.frameH) / float64(v.rows)
	return x, y
}

// samplePoints returns the frame pixels shown in the top and bottom half
// of a cell.
func (v view) samplePoints(cx, cy int) (image.Point, image.Point) {
	sub := float64(v.frameH) / float64(v.rows*2)
	x := int((float64(cx) + 0.5) * float64(v.frameW) / float64(v.cols))
	top := int((float64(cy*2) + 0.5) * sub)
	bottom := int((float64(cy*2+1) + 0.5) * sub)
	return image.Pt(min(x, v.frameW-1), min(top, v.frameH-1)), image.Pt(min(x, v.frameW-1), min(bottom, v.frameH-1))
}

func rgbaColor(img *image.RGBA, p image.Point) tcell.Color {
	c := img.RGBAAt(p.X, p.Y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (v view) draw(screen tcell.Screen, frame *image.RGBA) {
	for cy := 0; cy < v.rows; cy++ {
		for cx := 0; cx < v.cols; cx++ {
			top, bottom := v.samplePoints(cx, cy)
			style := tcell.StyleDefault.Foreground(rgbaColor(frame, top)).Background(rgbaColor(frame, bottom))
			screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}

// drawStatus writes s on the bottom row, truncated to the terminal width.
func (v view) drawStatus(screen tcell.Screen, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	line := runewidth.Truncate(s, v.cols, "…")
	x := 0
	for _, r := range line {
		screen.SetContent(x, v.rows, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < v.cols; x++ {
		screen.SetContent(x, v.rows, ' ', nil, style)
	}
}
