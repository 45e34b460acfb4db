package display

import (
	"context"

	"go.uber.org/zap"

	"wallpaper-aligner/internal/domain"
)

// File reads the layout from a file instead of asking the OS.
type File struct {
	path  string
	store domain.LayoutStore
	log   *zap.Logger
}

// NewFile returns a provider backed by the layout at path.
func NewFile(path string, store domain.LayoutStore, log *zap.Logger) *File {
	return &File{path: path, store: store, log: log}
}

// Configuration loads the layout file.
func (f *File) Configuration(ctx context.Context) (domain.Configuration, error) {
	if err := ctx.Err(); err != nil {
		return domain.Configuration{}, err
	}
	cfg, err := f.store.LoadLayout(f.path)
	if err != nil {
		return domain.Configuration{}, err
	}
	f.log.Debug("loaded display layout", zap.String("path", f.path), zap.Int("displays", len(cfg.Displays)))
	return cfg, nil
}

var _ domain.DisplayProvider = (*File)(nil)
