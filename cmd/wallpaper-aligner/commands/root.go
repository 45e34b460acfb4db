package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wallpaper-aligner/internal/app"
	"wallpaper-aligner/internal/domain"
	"wallpaper-aligner/internal/imaging"
	"wallpaper-aligner/internal/logger"
	wallpapersvc "wallpaper-aligner/internal/services/wallpaper"
	"wallpaper-aligner/internal/source"
	"wallpaper-aligner/internal/ui"
)

var (
	showDisplays bool
	force        bool
	output       string
	mode         string
	filter       string
	quality      int

	layoutPath string
	configPath string
	verbose    bool
	logFormat  string

	appCtx      *app.Wire
	closeLogger = func() {}
)

// errReported is returned after the failure was already explained to the user.
var errReported = errors.New("already reported")

// Execute runs the CLI and prints any error in red.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if appCtx != nil {
		_ = appCtx.Log.Sync()
	}
	closeLogger()
	if err != nil && !errors.Is(err, errReported) {
		ui.New(root.ErrOrStderr()).Error(err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wallpaper-aligner [flags] [image|color ...]",
		Short: "Compose one spanning wallpaper aligned to your displays",
		Long: "Takes one image or color per display, fits each to its display and\n" +
			"writes a single JPEG covering the whole virtual screen.",
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: wire,
		RunE:              runRoot,
	}

	root.Flags().BoolVarP(&showDisplays, "displays", "d", false, "show information about detected displays")
	root.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file without asking")
	root.Flags().StringVarP(&output, "output", "o", app.DefaultOutput, "output file name (.jpg is appended when missing)")
	root.Flags().StringVarP(&mode, "mode", "m", domain.ResizeStretch.String(), "resize mode: stretch, fill or fit")
	root.Flags().StringVar(&filter, "filter", domain.FilterCatmullRom.String(), "resampling filter: catmull-rom, bilinear, approx-bilinear or nearest")
	root.Flags().IntVar(&quality, "quality", imaging.DefaultQuality, "JPEG quality (1-100)")

	root.PersistentFlags().StringVar(&layoutPath, "layout", "", "read the display layout from a YAML file instead of the OS")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wallpaper-aligner/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug diagnostics to stderr")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "console", "diagnostic log format: console or json")

	root.AddCommand(layoutCmd(), versionCmd())
	return root
}

// wire loads configuration and builds the dependency graph for cmd.
func wire(cmd *cobra.Command, _ []string) error {
	if err := app.LoadDotenv(".env"); err != nil {
		return err
	}
	cfg, err := app.Load(cmd.Flags(), configPath)
	if err != nil {
		return err
	}
	log, closeLog, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("unable to create logger: %w", err)
	}
	closeLogger = closeLog
	appCtx, err = app.NewWire(cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
	return err
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !showDisplays {
		return cmd.Help()
	}
	ctx := cmd.Context()
	p := appCtx.Printer

	shown := false
	if showDisplays {
		detected, err := appCtx.Displays.Configuration(ctx)
		if err != nil {
			return err
		}
		p.ShowDisplays(detected)
		shown = true
		if len(args) == 0 {
			return nil
		}
	}

	sources, err := source.ParseAll(args)
	if err != nil {
		return err
	}

	layout, err := appCtx.Wallpaper.Check(ctx, len(sources))
	var mismatch *domain.CountMismatchError
	if errors.As(err, &mismatch) {
		p.CountMismatch(mismatch)
		if !shown {
			p.ShowDisplays(layout)
		}
		return errReported
	}
	if err != nil {
		return err
	}

	cfg := appCtx.Config
	path, err := resolveOutput(appCtx.Prompter, cfg.Output, cfg.Force)
	if err != nil {
		return err
	}

	res, err := appCtx.Wallpaper.Compose(ctx, layout, wallpapersvc.Request{
		Sources: sources,
		Mode:    cfg.Mode,
		Filter:  cfg.Filter,
		Quality: cfg.Quality,
	})
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		p.Warnf("%s", w)
	}

	if err := appCtx.Wallpapers.SaveWallpaper(path, res.JPEG); err != nil {
		return fmt.Errorf("unable to save wallpaper: %w", err)
	}
	appCtx.Log.Debug("wallpaper saved", zap.String("path", path), zap.Int("bytes", len(res.JPEG)))
	p.Success("Done!")
	return nil
}

// resolveOutput asks until the user accepts overwriting or picks a name that
// does not exist yet.
func resolveOutput(pr domain.Prompter, name string, force bool) (string, error) {
	path := app.NormalizeOutputName(name)
	for !force {
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return "", err
		}
		ok, err := pr.ConfirmOverwrite(path)
		if err != nil {
			return "", err
		}
		if ok {
			break
		}
		next, err := pr.AskFilename()
		if err != nil {
			return "", err
		}
		path = app.NormalizeOutputName(next)
	}
	return path, nil
}
