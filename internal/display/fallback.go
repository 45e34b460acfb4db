package display

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"wallpaper-aligner/internal/domain"
)

// Fallback asks each provider in turn and returns the first layout found.
type Fallback struct {
	providers []domain.DisplayProvider
	log       *zap.Logger
}

// NewFallback returns a provider trying providers in order.
func NewFallback(log *zap.Logger, providers ...domain.DisplayProvider) *Fallback {
	return &Fallback{providers: providers, log: log}
}

// Configuration returns the first successful result. Cancellation stops the
// search; otherwise all failures are joined.
func (f *Fallback) Configuration(ctx context.Context) (domain.Configuration, error) {
	var errs []error
	for _, p := range f.providers {
		cfg, err := p.Configuration(ctx)
		if err == nil {
			return cfg, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Configuration{}, ctxErr
		}
		f.log.Debug("display provider failed", zap.Error(err))
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return domain.Configuration{}, domain.ErrNoDisplays
	}
	return domain.Configuration{}, errors.Join(errs...)
}

var _ domain.DisplayProvider = (*Fallback)(nil)
