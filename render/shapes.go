package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// circle is an alpha mask that is opaque inside the radius.
type circle struct {
	p image.Point
	r int
}

func (c *circle) ColorModel() color.Model {
	return color.AlphaModel
}

func (c *circle) Bounds() image.Rectangle {
	return image.Rect(c.p.X-c.r, c.p.Y-c.r, c.p.X+c.r, c.p.Y+c.r)
}

func (c *circle) At(x, y int) color.Color {
	xx, yy, rr := float64(x-c.p.X)+0.5, float64(y-c.p.Y)+0.5, float64(c.r)
	if xx*xx+yy*yy < rr*rr {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

// FillCircle draws a filled circle centered on center.
func FillCircle(dst xdraw.Image, center image.Point, radius int, col color.Color) {
	if radius <= 0 {
		return
	}
	mask := &circle{p: center, r: radius}
	r := mask.Bounds().Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	xdraw.DrawMask(dst, r, image.NewUniform(col), image.Point{}, mask, r.Min, xdraw.Over)
}

// Crosshair draws a plus sign of the given arm length.
func Crosshair(dst xdraw.Image, center image.Point, arm int, col color.Color) {
	src := image.NewUniform(col)
	h := image.Rect(center.X-arm, center.Y, center.X+arm+1, center.Y+1)
	v := image.Rect(center.X, center.Y-arm, center.X+1, center.Y+arm+1)
	xdraw.Draw(dst, h.Intersect(dst.Bounds()), src, image.Point{}, xdraw.Over)
	xdraw.Draw(dst, v.Intersect(dst.Bounds()), src, image.Point{}, xdraw.Over)
}

// Fill paints the whole image with col.
func Fill(dst xdraw.Image, col color.Color) {
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{}, xdraw.Src)
}
