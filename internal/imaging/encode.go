package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/gen2brain/jpegli"
)

// DefaultQuality is the JPEG quality used for wallpapers.
const DefaultQuality = 100

// EncodeJPEG encodes img at quality (1..100) without chroma subsampling, so
// the edge between two displays keeps its colors.
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("jpeg quality must be between 1 and 100, got %d", quality)
	}
	var buf bytes.Buffer
	err := jpegli.Encode(&buf, img, &jpegli.EncodingOptions{
		Quality:           quality,
		ChromaSubsampling: image.YCbCrSubsampleRatio444,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to compress wallpaper: %w", err)
	}
	return buf.Bytes(), nil
}
