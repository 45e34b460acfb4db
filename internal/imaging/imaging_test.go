package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"wallpaper-aligner/internal/domain"
	"wallpaper-aligner/internal/imaging"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		mode         domain.ResizeMode
		wantW, wantH int
	}{
		{"stretch ignores aspect", 100, 100, domain.ResizeStretch, 1920, 1080},
		{"fill uses display size", 4000, 1000, domain.ResizeFill, 1920, 1080},
		{"fit wide image", 3840, 1080, domain.ResizeFit, 1920, 540},
		{"fit tall image", 1000, 2000, domain.ResizeFit, 540, 1080},
		{"fit same aspect", 3840, 2160, domain.ResizeFit, 1920, 1080},
		{"fit rounds", 1001, 1000, domain.ResizeFit, 1081, 1080},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := imaging.TargetSize(tt.srcW, tt.srcH, 1920, 1080, tt.mode)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestCropRect(t *testing.T) {
	src := image.Rect(0, 0, 400, 100)

	assert.Equal(t, src, imaging.CropRect(src, 200, 100, domain.ResizeStretch))
	assert.Equal(t, image.Rect(100, 0, 300, 100), imaging.CropRect(src, 200, 100, domain.ResizeFill))
	assert.Equal(t, image.Rect(0, 150, 400, 250), imaging.CropRect(image.Rect(0, 0, 400, 400), 400, 100, domain.ResizeFill))
	assert.Equal(t, src, imaging.CropRect(src, 800, 200, domain.ResizeFill))
}

func TestResize_FillSamplesCenter(t *testing.T) {
	// Left and right quarters red, center half green: fill to a square keeps only green.
	src := solid(400, 100, color.RGBA{R: 0xff, A: 0xff})
	for y := 0; y < 100; y++ {
		for x := 100; x < 300; x++ {
			src.SetRGBA(x, y, color.RGBA{G: 0xff, A: 0xff})
		}
	}

	for _, f := range []domain.Filter{domain.FilterNearest, domain.FilterCatmullRom} {
		out := imaging.Resize(src, 50, 50, domain.ResizeFill, f)
		require.Equal(t, image.Rect(0, 0, 50, 50), out.Bounds())
		assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, out.RGBAAt(25, 25), f.String())
		assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, out.RGBAAt(2, 25), f.String())
	}

	stretched := imaging.Resize(src, 40, 10, domain.ResizeStretch, domain.FilterNearest)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, stretched.RGBAAt(0, 5))
}

func TestOffset(t *testing.T) {
	display := image.Rect(1920, 0, 3840, 1080)
	assert.Equal(t, image.Pt(1920, 270), imaging.Offset(display, image.Pt(1920, 540)))
	assert.Equal(t, image.Pt(2400, 0), imaging.Offset(display, image.Pt(960, 1080)))
	assert.Equal(t, image.Pt(1920, 0), imaging.Offset(display, image.Pt(1920, 1080)))
}

func TestCanvas_FillAndPlace(t *testing.T) {
	c := imaging.NewCanvas(20, 10)
	assert.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(0, 0))

	c.Fill(image.Rect(0, 0, 10, 10), color.RGBA{B: 0xff, A: 0xff})
	c.Place(solid(4, 4, color.RGBA{R: 0xff, A: 0xff}), image.Pt(18, 8)) // clipped

	img := c.Image()
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, img.RGBAAt(9, 9))
	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(10, 0))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(19, 9))
	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(17, 9))
}

func TestDecode(t *testing.T) {
	src := solid(3, 2, color.RGBA{R: 10, G: 20, B: 30, A: 0xff})

	var pngBuf, bmpBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, src))
	require.NoError(t, bmp.Encode(&bmpBuf, src))

	img, format, err := imaging.Decode(pngBuf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	img, format, err = imaging.Decode(bmpBuf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "bmp", format)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	_, _, err = imaging.Decode([]byte("definitely not an image"))
	assert.ErrorIs(t, err, imaging.ErrUnknownFormat)

	truncated := pngBuf.Bytes()[:len(pngBuf.Bytes())/2]
	_, _, err = imaging.Decode(truncated)
	require.Error(t, err)
	assert.NotErrorIs(t, err, imaging.ErrUnknownFormat)
}

func TestEncodeJPEG(t *testing.T) {
	data, err := imaging.EncodeJPEG(solid(16, 8, color.RGBA{R: 0xff, A: 0xff}), imaging.DefaultQuality)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())

	ycc, ok := img.(*image.YCbCr)
	require.True(t, ok, "decoded %T", img)
	assert.Equal(t, image.YCbCrSubsampleRatio444, ycc.SubsampleRatio)

	_, err = imaging.EncodeJPEG(solid(1, 1, color.RGBA{}), 0)
	assert.Error(t, err)
	_, err = imaging.EncodeJPEG(solid(1, 1, color.RGBA{}), 101)
	assert.Error(t, err)
}

func TestEncodeJPEG_DisplayEdgeStaysSharp(t *testing.T) {
	// Two displays meeting at an odd column, where 4:2:0 would average
	// the neighbouring chroma samples.
	c := imaging.NewCanvas(42, 8)
	c.Fill(image.Rect(0, 0, 21, 8), color.RGBA{R: 0xff, A: 0xff})
	c.Fill(image.Rect(21, 0, 42, 8), color.RGBA{B: 0xff, A: 0xff})

	data, err := imaging.EncodeJPEG(c.Image(), imaging.DefaultQuality)
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	for _, x := range []int{19, 20} {
		r, _, b, _ := img.At(x, 4).RGBA()
		assert.Greater(t, r>>8, uint32(200), "x=%d red", x)
		assert.Less(t, b>>8, uint32(60), "x=%d blue", x)
	}
	for _, x := range []int{21, 22} {
		r, _, b, _ := img.At(x, 4).RGBA()
		assert.Less(t, r>>8, uint32(60), "x=%d red", x)
		assert.Greater(t, b>>8, uint32(200), "x=%d blue", x)
	}
}
