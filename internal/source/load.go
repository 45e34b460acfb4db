package source

import (
	"context"
	"fmt"
	"os"

	"wallpaper-aligner/internal/domain"
)

// Loader reads the encoded bytes behind file and URL sources.
type Loader struct {
	fetcher domain.ImageFetcher
}

// NewLoader returns a Loader. fetcher may be nil when URL sources are not expected.
func NewLoader(fetcher domain.ImageFetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load returns the raw image bytes for src.
func (l *Loader) Load(ctx context.Context, src domain.Source) ([]byte, error) {
	switch src.Kind {
	case domain.SourceFile:
		return os.ReadFile(src.Location)
	case domain.SourceURL:
		if l.fetcher == nil {
			return nil, fmt.Errorf("no fetcher configured for %s", src.Location)
		}
		return l.fetcher.Fetch(ctx, src.Location)
	default:
		return nil, fmt.Errorf("source %s has no image data", src)
	}
}
