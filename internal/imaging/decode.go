package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnknownFormat is returned when the data matches no registered image format.
var ErrUnknownFormat = errors.New("unable to detect image format")

// Decode sniffs the format of data and decodes it.
func Decode(data []byte) (image.Image, string, error) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); errors.Is(err, image.ErrFormat) {
		return nil, "", ErrUnknownFormat
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("unable to decode %s image: %w", formatName(format), err)
	}
	return img, format, nil
}

func formatName(f string) string {
	if f == "" {
		return "unknown"
	}
	return f
}
