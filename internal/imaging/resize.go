package imaging

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"wallpaper-aligner/internal/domain"
)

// ratioEpsilon is the single-precision machine epsilon; ratios closer than
// this are treated as equal so square-ish images fit by height.
const ratioEpsilon = 1.1920929e-07

// TargetSize returns the size a source of srcW x srcH is resized to on a
// display of dispW x dispH.
func TargetSize(srcW, srcH, dispW, dispH int, mode domain.ResizeMode) (w, h int) {
	if mode != domain.ResizeFit || srcW <= 0 || srcH <= 0 {
		return dispW, dispH
	}
	widthRatio := float64(srcW) / float64(dispW)
	heightRatio := float64(srcH) / float64(dispH)
	if widthRatio-heightRatio > ratioEpsilon {
		w, h = dispW, int(math.Round(float64(srcH)/widthRatio))
	} else {
		w, h = int(math.Round(float64(srcW)/heightRatio)), dispH
	}
	return max(w, 1), max(h, 1)
}

// CropRect returns the part of src that is sampled when resizing to w x h.
// Fill mode crops around the center to the destination aspect ratio; the other
// modes use the whole source.
func CropRect(src image.Rectangle, w, h int, mode domain.ResizeMode) image.Rectangle {
	if mode != domain.ResizeFill || w <= 0 || h <= 0 {
		return src
	}
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 {
		return src
	}
	// Compare sw/sh against w/h without floats.
	switch {
	case sw*h > w*sh:
		cw := max(int(math.Round(float64(sh)*float64(w)/float64(h))), 1)
		x := src.Min.X + (sw-cw)/2
		return image.Rect(x, src.Min.Y, x+cw, src.Max.Y)
	case sw*h < w*sh:
		ch := max(int(math.Round(float64(sw)*float64(h)/float64(w))), 1)
		y := src.Min.Y + (sh-ch)/2
		return image.Rect(src.Min.X, y, src.Max.X, y+ch)
	default:
		return src
	}
}

// Resize resamples src into a new w x h RGBA image according to mode.
func Resize(src image.Image, w, h int, mode domain.ResizeMode, filter domain.Filter) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	crop := CropRect(src.Bounds(), w, h, mode)
	interpolator(filter).Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}

// Offset returns where an image of size is placed on display so that it is
// centered when smaller than the display.
func Offset(display image.Rectangle, size image.Point) image.Point {
	at := display.Min
	if dx := display.Dx() - size.X; dx > 0 {
		at.X += dx / 2
	}
	if dy := display.Dy() - size.Y; dy > 0 {
		at.Y += dy / 2
	}
	return at
}

func interpolator(f domain.Filter) draw.Interpolator {
	switch f {
	case domain.FilterNearest:
		return draw.NearestNeighbor
	case domain.FilterApproxBilinear:
		return draw.ApproxBiLinear
	case domain.FilterBilinear:
		return draw.BiLinear
	default:
		return draw.CatmullRom
	}
}
