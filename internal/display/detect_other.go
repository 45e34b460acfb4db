//go:build !windows && !linux

package display

import (
	"context"

	"go.uber.org/zap"

	"wallpaper-aligner/internal/domain"
)

type unsupported struct{}

func (unsupported) Configuration(context.Context) (domain.Configuration, error) {
	return domain.Configuration{}, domain.ErrUnsupportedPlatform
}

// NewPlatform returns a provider that always fails; use a layout file instead.
func NewPlatform(*zap.Logger) domain.DisplayProvider {
	return unsupported{}
}
