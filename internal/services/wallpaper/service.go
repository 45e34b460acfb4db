package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wallpaper-aligner/internal/domain"
	"wallpaper-aligner/internal/imaging"
)

// Loader returns the encoded bytes behind an image source.
type Loader interface {
	Load(ctx context.Context, src domain.Source) ([]byte, error)
}

// Request describes one wallpaper.
type Request struct {
	Sources []domain.Source
	Mode    domain.ResizeMode
	Filter  domain.Filter
	Quality int
}

// Warning is a per-display failure that did not abort the run.
type Warning struct {
	Display int // zero-based
	Source  domain.Source
	Message string
	Err     error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s '%s': %v", w.Message, w.Source, w.Err)
}

// Result is a composed wallpaper.
type Result struct {
	// Configuration is the normalized layout the wallpaper was composed for.
	Configuration domain.Configuration
	Image         *image.RGBA
	JPEG          []byte
	Warnings      []Warning
}

// Service manages wallpaper composition.
type Service struct {
	displays domain.DisplayProvider
	loader   Loader
	log      *zap.Logger
	workers  int
}

// New returns a Service using up to workers concurrent decodes; workers <= 0
// means one per CPU.
func New(displays domain.DisplayProvider, loader Loader, log *zap.Logger, workers int) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{displays: displays, loader: loader, log: log, workers: workers}
}

// Check detects the display layout and verifies that it has exactly count
// displays. On a mismatch the detected Configuration is returned along with a
// *domain.CountMismatchError so callers can show it.
func (s *Service) Check(ctx context.Context, count int) (domain.Configuration, error) {
	cfg, err := s.displays.Configuration(ctx)
	if err != nil {
		return domain.Configuration{}, err
	}
	if len(cfg.Displays) != count {
		return cfg, &domain.CountMismatchError{Displays: len(cfg.Displays), Sources: count}
	}
	return cfg, nil
}

// Generate detects the layout and composes req onto it.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	cfg, err := s.Check(ctx, len(req.Sources))
	if err != nil {
		return Result{Configuration: cfg}, err
	}
	return s.Compose(ctx, cfg, req)
}

// Compose paints req.Sources onto cfg, one source per display in order.
func (s *Service) Compose(ctx context.Context, cfg domain.Configuration, req Request) (Result, error) {
	if len(cfg.Displays) != len(req.Sources) {
		return Result{}, &domain.CountMismatchError{Displays: len(cfg.Displays), Sources: len(req.Sources)}
	}
	cfg = cfg.Normalized()

	w, h := cfg.Bounds.Resolution()
	s.log.Debug("composing wallpaper",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Stringer("mode", req.Mode),
		zap.Stringer("filter", req.Filter))

	resized, warnings, err := s.prepareAll(ctx, cfg, req)
	if err != nil {
		return Result{}, err
	}

	canvas := imaging.NewCanvas(w, h)
	for i, src := range req.Sources {
		bounds := cfg.Displays[i].Bounds.Image()
		switch {
		case src.Kind == domain.SourceColor:
			if !src.IsBlack() {
				canvas.Fill(bounds, src.Color)
			}
		case resized[i] != nil:
			canvas.Place(resized[i], imaging.Offset(bounds, resized[i].Bounds().Size()))
		}
	}

	data, err := imaging.EncodeJPEG(canvas.Image(), req.Quality)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Configuration: cfg,
		Image:         canvas.Image(),
		JPEG:          data,
		Warnings:      warnings,
	}, nil
}

// prepareAll loads and resizes every image source concurrently. Only context
// cancellation is returned as an error; other failures become warnings.
func (s *Service) prepareAll(ctx context.Context, cfg domain.Configuration, req Request) ([]*image.RGBA, []Warning, error) {
	resized := make([]*image.RGBA, len(req.Sources))
	failed := make([]*Warning, len(req.Sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, src := range req.Sources {
		if src.Kind == domain.SourceColor {
			continue
		}
		g.Go(func() error {
			img, err := s.prepare(gctx, src, cfg.Displays[i], req)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				failed[i] = newWarning(i, src, err)
				return nil
			}
			resized[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for _, w := range failed {
		if w != nil {
			warnings = append(warnings, *w)
		}
	}
	return resized, warnings, nil
}

type stageError struct {
	stage string
	err   error
}

func (e *stageError) Error() string { return e.err.Error() }
func (e *stageError) Unwrap() error { return e.err }

func (s *Service) prepare(ctx context.Context, src domain.Source, d domain.Display, req Request) (*image.RGBA, error) {
	start := time.Now()
	data, err := s.loader.Load(ctx, src)
	if err != nil {
		return nil, &stageError{stage: "Unable to load image", err: err}
	}

	img, format, err := imaging.Decode(data)
	if errors.Is(err, imaging.ErrUnknownFormat) {
		return nil, &stageError{stage: "Unable to detect image format for", err: err}
	}
	if err != nil {
		return nil, &stageError{stage: "Unable to decode image", err: err}
	}

	dw, dh := d.Bounds.Resolution()
	b := img.Bounds()
	tw, th := imaging.TargetSize(b.Dx(), b.Dy(), dw, dh, req.Mode)
	out := imaging.Resize(img, tw, th, req.Mode, req.Filter)

	s.log.Debug("prepared image",
		zap.String("source", src.Location),
		zap.String("format", format),
		zap.String("display", d.Name),
		zap.Int("width", tw),
		zap.Int("height", th),
		zap.Duration("took", time.Since(start)))
	return out, nil
}

func newWarning(display int, src domain.Source, err error) *Warning {
	w := &Warning{Display: display, Source: src, Message: "Unable to process image", Err: err}
	var se *stageError
	if errors.As(err, &se) {
		w.Message = se.stage
		w.Err = se.err
	}
	return w
}
