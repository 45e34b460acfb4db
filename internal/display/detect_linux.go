package display

import (
	"go.uber.org/zap"

	"wallpaper-aligner/internal/domain"
)

// NewPlatform asks the X server over RandR and falls back to the xrandr tool.
func NewPlatform(log *zap.Logger) domain.DisplayProvider {
	return NewFallback(log, NewRandR(log), NewXrandr(log))
}
