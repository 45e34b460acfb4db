package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is the virtual-screen image the displays are composed onto.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns an opaque black canvas of w x h.
func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 0xff}), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Fill paints r with c, clipped to the canvas.
func (c *Canvas) Fill(r image.Rectangle, col color.RGBA) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(col), image.Point{}, draw.Src)
}

// Place copies img with its top-left corner at at, clipped to the canvas.
func (c *Canvas) Place(img image.Image, at image.Point) {
	b := img.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	draw.Draw(c.img, r, img, b.Min, draw.Src)
}

// Image returns the composed image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}
