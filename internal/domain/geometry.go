package domain

import "image"

// Rectangle is an axis-aligned area in desktop coordinates. Max edges are exclusive.
type Rectangle struct {
	MinX int `json:"min_x" yaml:"min_x"`
	MaxX int `json:"max_x" yaml:"max_x"`
	MinY int `json:"min_y" yaml:"min_y"`
	MaxY int `json:"max_y" yaml:"max_y"`
}

// Rect builds a Rectangle from an origin and a size.
func Rect(x, y, width, height int) Rectangle {
	return Rectangle{MinX: x, MaxX: x + width, MinY: y, MaxY: y + height}
}

// Resolution returns the width and height.
func (r Rectangle) Resolution() (width, height int) {
	return r.MaxX - r.MinX, r.MaxY - r.MinY
}

// Empty reports whether r covers no pixels.
func (r Rectangle) Empty() bool {
	w, h := r.Resolution()
	return w <= 0 || h <= 0
}

// Normalize moves r to the origin keeping its size.
func (r *Rectangle) Normalize() *Rectangle {
	r.MaxX -= r.MinX
	r.MaxY -= r.MinY
	r.MinX = 0
	r.MinY = 0
	return r
}

// Normalized returns a copy of r moved to the origin.
func (r Rectangle) Normalized() Rectangle {
	r.Normalize()
	return r
}

// MoveBy translates r in place.
func (r *Rectangle) MoveBy(dx, dy int) *Rectangle {
	r.MinX += dx
	r.MaxX += dx
	r.MinY += dy
	r.MaxY += dy
	return r
}

// MovedBy returns a translated copy of r.
func (r Rectangle) MovedBy(dx, dy int) Rectangle {
	r.MoveBy(dx, dy)
	return r
}

// Union returns the smallest rectangle containing both r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	return Rectangle{
		MinX: min(r.MinX, o.MinX),
		MaxX: max(r.MaxX, o.MaxX),
		MinY: min(r.MinY, o.MinY),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Image converts r to an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(r.MinX, r.MinY, r.MaxX, r.MaxY)
}
