package store

import "wallpaper-aligner/internal/domain"

// WallpaperFileStore writes finished wallpapers to disk.
type WallpaperFileStore struct{}

// NewWallpaperFileStore returns a WallpaperFileStore.
func NewWallpaperFileStore() *WallpaperFileStore {
	return &WallpaperFileStore{}
}

// SaveWallpaper atomically replaces path with data, creating parent directories.
func (s *WallpaperFileStore) SaveWallpaper(path string, data []byte) error {
	return writeFile(path, data, 0o644)
}

// Compile-time assertion that WallpaperFileStore implements domain.WallpaperStore.
var _ domain.WallpaperStore = (*WallpaperFileStore)(nil)
