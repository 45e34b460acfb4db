package domain_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpaper-aligner/internal/domain"
)

func TestRectangle_ResolutionAndNormalize(t *testing.T) {
	r := domain.Rectangle{MinX: -1920, MaxX: 0, MinY: 120, MaxY: 1200}

	w, h := r.Resolution()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	n := r.Normalized()
	assert.Equal(t, domain.Rectangle{MinX: 0, MaxX: 1920, MinY: 0, MaxY: 1080}, n)
	assert.Equal(t, -1920, r.MinX, "Normalized must not modify the receiver")

	r.Normalize()
	assert.Equal(t, n, r)
}

func TestRectangle_MoveAndUnion(t *testing.T) {
	r := domain.Rect(10, 20, 100, 50)
	assert.Equal(t, domain.Rectangle{MinX: 15, MaxX: 115, MinY: 10, MaxY: 60}, r.MovedBy(5, -10))

	u := r.Union(domain.Rect(-50, 0, 20, 20))
	assert.Equal(t, domain.Rectangle{MinX: -50, MaxX: 110, MinY: 0, MaxY: 70}, u)
	assert.Equal(t, image.Rect(-50, 0, 110, 70), u.Image())

	assert.True(t, domain.Rect(0, 0, 0, 10).Empty())
	assert.False(t, r.Empty())
}

func TestConfiguration_NormalizeKeepsRelativePositions(t *testing.T) {
	cfg := domain.NewConfiguration([]domain.Display{
		{Name: "primary", Bounds: domain.Rect(0, 0, 2560, 1440)},
		{Name: "left", Bounds: domain.Rect(-1920, 360, 1920, 1080)},
		{Name: "top", Bounds: domain.Rect(320, -1080, 1920, 1080)},
	})
	require.Equal(t, domain.Rectangle{MinX: -1920, MaxX: 2560, MinY: -1080, MaxY: 1440}, cfg.Bounds)

	n := cfg.Normalized()
	assert.Equal(t, domain.Rectangle{MinX: 0, MaxX: 4480, MinY: 0, MaxY: 2520}, n.Bounds)
	assert.Equal(t, domain.Rect(1920, 1080, 2560, 1440), n.Displays[0].Bounds)
	assert.Equal(t, domain.Rect(0, 1440, 1920, 1080), n.Displays[1].Bounds)
	assert.Equal(t, domain.Rect(2240, 0, 1920, 1080), n.Displays[2].Bounds)

	// Normalized copies the display slice.
	assert.Equal(t, domain.Rect(0, 0, 2560, 1440), cfg.Displays[0].Bounds)
}

func TestParseResizeMode(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.ResizeMode
		wantErr bool
	}{
		{"stretch", domain.ResizeStretch, false},
		{"FILL", domain.ResizeFill, false},
		{" fit ", domain.ResizeFit, false},
		{"", domain.ResizeStretch, false},
		{"zoom", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseResizeMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.String())
		})
	}
}

func TestParseFilter(t *testing.T) {
	for _, name := range []string{"catmull-rom", "bilinear", "approx-bilinear", "nearest"} {
		f, err := domain.ParseFilter(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	f, err := domain.ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, domain.FilterCatmullRom, f)

	_, err = domain.ParseFilter("lanczos")
	assert.Error(t, err)
}

func TestSource_IsBlack(t *testing.T) {
	assert.True(t, domain.Source{Kind: domain.SourceColor, Color: domain.Black}.IsBlack())
	assert.False(t, domain.Source{Kind: domain.SourceColor, Color: color.RGBA{R: 1, A: 0xff}}.IsBlack())
	assert.False(t, domain.Source{Kind: domain.SourceFile, Location: "a.png"}.IsBlack())
	assert.Equal(t, "#FF0080", domain.Source{Kind: domain.SourceColor, Color: color.RGBA{R: 0xff, B: 0x80, A: 0xff}}.String())
}

func TestCountMismatchError(t *testing.T) {
	var err error = &domain.CountMismatchError{Displays: 2, Sources: 3}
	assert.EqualError(t, err, "detected 2 displays but 3 images were provided")
}
