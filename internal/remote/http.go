package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"wallpaper-aligner/internal/domain"
)

// DefaultMaxBytes caps a single downloaded image.
const DefaultMaxBytes int64 = 64 << 20

// ErrTooLarge is returned when a response body exceeds the configured cap.
var ErrTooLarge = errors.New("remote image exceeds size limit")

// HTTP fetches images over HTTP(S).
type HTTP struct {
	HTTP     *http.Client
	MaxBytes int64
	Log      *zap.Logger
}

// NewHTTP returns an HTTP fetcher with the given request timeout. A zero
// timeout leaves requests bounded only by the caller's context.
func NewHTTP(timeout time.Duration, maxBytes int64, log *zap.Logger) *HTTP {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTP{
		HTTP:     &http.Client{Timeout: timeout},
		MaxBytes: maxBytes,
		Log:      log,
	}
}

// Fetch downloads url and returns the raw body.
func (c *HTTP) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "image/*")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%s %s: %s", req.Method, url, resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.MaxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > c.MaxBytes {
		return nil, fmt.Errorf("%s %s: %w (%d bytes)", req.Method, url, ErrTooLarge, c.MaxBytes)
	}
	c.Log.Debug("fetched remote image",
		zap.String("url", url),
		zap.Int("bytes", len(b)),
		zap.Duration("took", time.Since(start)))
	return b, nil
}

var _ domain.ImageFetcher = (*HTTP)(nil)
