package display

import (
	"context"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
	"go.uber.org/zap"

	"wallpaper-aligner/internal/domain"
)

// RandR reads the layout from the X server's RandR extension.
type RandR struct {
	// Query returns the active outputs; replaced in tests.
	Query func(ctx context.Context) ([]domain.Display, error)
	log   *zap.Logger
}

// NewRandR returns a provider talking to $DISPLAY over the X11 protocol.
func NewRandR(log *zap.Logger) *RandR {
	return &RandR{Query: queryRandR, log: log}
}

// Configuration lists connected outputs that drive a CRTC, in output order.
func (r *RandR) Configuration(ctx context.Context) (domain.Configuration, error) {
	displays, err := r.Query(ctx)
	if err != nil {
		return domain.Configuration{}, err
	}
	if len(displays) == 0 {
		return domain.Configuration{}, domain.ErrNoDisplays
	}
	r.log.Debug("detected displays via RandR", zap.Int("displays", len(displays)))
	return domain.NewConfiguration(displays), nil
}

func queryRandR(ctx context.Context) ([]domain.Display, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("randr: %w", err)
	}
	root := xproto.Setup(conn).DefaultScreen(conn).Root
	res, err := randr.GetScreenResourcesCurrent(conn, root).Reply()
	if err != nil {
		return nil, fmt.Errorf("randr: screen resources: %w", err)
	}

	var displays []domain.Display
	for _, output := range res.Outputs {
		oi, err := randr.GetOutputInfo(conn, output, res.ConfigTimestamp).Reply()
		if err != nil {
			return nil, fmt.Errorf("randr: output info: %w", err)
		}
		if oi.Connection != randr.ConnectionConnected || oi.Crtc == 0 {
			continue
		}
		ci, err := randr.GetCrtcInfo(conn, oi.Crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			return nil, fmt.Errorf("randr: crtc info: %w", err)
		}
		if ci.Width == 0 || ci.Height == 0 {
			continue
		}
		name := string(oi.Name)
		if name == "" {
			name = domain.UnknownDisplayName
		}
		displays = append(displays, domain.Display{
			Name:   name,
			Bounds: domain.Rect(int(ci.X), int(ci.Y), int(ci.Width), int(ci.Height)),
		})
	}
	return displays, nil
}

var _ domain.DisplayProvider = (*RandR)(nil)
