package domain

import "context"

// DisplayProvider reports the current display layout.
type DisplayProvider interface {
	Configuration(ctx context.Context) (Configuration, error)
}

// LayoutStore reads and writes display layouts to files.
type LayoutStore interface {
	SaveLayout(path string, cfg Configuration) error
	LoadLayout(path string) (Configuration, error)
}

// WallpaperStore persists the encoded wallpaper.
type WallpaperStore interface {
	SaveWallpaper(path string, data []byte) error
}

// ImageFetcher downloads encoded images over the network.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Prompter asks the user how to resolve an existing output file.
type Prompter interface {
	ConfirmOverwrite(path string) (bool, error)
	AskFilename() (string, error)
}
