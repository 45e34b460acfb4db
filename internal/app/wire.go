package app

import (
	"io"

	"go.uber.org/zap"

	"wallpaper-aligner/internal/display"
	"wallpaper-aligner/internal/domain"
	"wallpaper-aligner/internal/prompt"
	"wallpaper-aligner/internal/remote"
	wallpapersvc "wallpaper-aligner/internal/services/wallpaper"
	"wallpaper-aligner/internal/source"
	"wallpaper-aligner/internal/store"
	"wallpaper-aligner/internal/ui"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config     *Config
	Log        *zap.Logger
	Displays   domain.DisplayProvider
	Layouts    domain.LayoutStore
	Wallpapers domain.WallpaperStore
	Wallpaper  *wallpapersvc.Service
	Prompter   domain.Prompter
	Printer    *ui.Printer
}

// NewWire constructs the dependency graph from cfg. Prompts read from in;
// prompts and messages are written to out.
func NewWire(cfg *Config, log *zap.Logger, in io.Reader, out io.Writer) (*Wire, error) {
	if log == nil {
		log = zap.NewNop()
	}

	// File-based stores
	layouts := store.NewLayoutFileStore()
	wallpapers := store.NewWallpaperFileStore()

	// Layout file wins over OS detection
	var displays domain.DisplayProvider
	if cfg.Layout != "" {
		displays = display.NewFile(cfg.Layout, layouts, log.Named("display"))
	} else {
		displays = display.NewPlatform(log.Named("display"))
	}

	fetcher := remote.NewHTTP(cfg.HTTP.Timeout, cfg.HTTP.MaxBytes, log.Named("remote"))
	loader := source.NewLoader(fetcher)
	svc := wallpapersvc.New(displays, loader, log.Named("wallpaper"), cfg.Workers)

	printer := ui.New(out)
	prompter := prompt.NewTerminal(in, out, printer.Highlight)

	return &Wire{
		Config:     cfg,
		Log:        log,
		Displays:   displays,
		Layouts:    layouts,
		Wallpapers: wallpapers,
		Wallpaper:  svc,
		Prompter:   prompter,
		Printer:    printer,
	}, nil
}
