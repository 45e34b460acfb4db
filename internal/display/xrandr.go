package display

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"wallpaper-aligner/internal/domain"
)

// xrandrOutput matches "<name> connected [primary] WxH+X+Y ...".
var xrandrOutput = regexp.MustCompile(`^(\S+) connected (?:primary )?(\d+)x(\d+)([+-]\d+)([+-]\d+)`)

// ParseXrandr extracts active outputs from `xrandr --query` output in the
// order they are listed. Connected outputs without a mode are skipped.
func ParseXrandr(r io.Reader) ([]domain.Display, error) {
	var displays []domain.Display
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		m := xrandrOutput.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		nums := make([]int, 4)
		for i, s := range m[2:6] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("xrandr: parse %q: %w", sc.Text(), err)
			}
			nums[i] = n
		}
		displays = append(displays, domain.Display{
			Name:   m[1],
			Bounds: domain.Rect(nums[2], nums[3], nums[0], nums[1]),
		})
	}
	return displays, sc.Err()
}

// Xrandr asks the X server for the layout.
type Xrandr struct {
	// Run returns the output of `xrandr --query`; replaced in tests.
	Run func(ctx context.Context) ([]byte, error)
	log *zap.Logger
}

// NewXrandr returns a provider that shells out to xrandr.
func NewXrandr(log *zap.Logger) *Xrandr {
	return &Xrandr{Run: runXrandr, log: log}
}

func runXrandr(ctx context.Context) ([]byte, error) {
	out, err := exec.CommandContext(ctx, "xrandr", "--query").Output()
	if err != nil {
		return nil, fmt.Errorf("run xrandr: %w", err)
	}
	return out, nil
}

// Configuration runs xrandr and parses its output.
func (x *Xrandr) Configuration(ctx context.Context) (domain.Configuration, error) {
	out, err := x.Run(ctx)
	if err != nil {
		return domain.Configuration{}, err
	}
	displays, err := ParseXrandr(bytes.NewReader(out))
	if err != nil {
		return domain.Configuration{}, err
	}
	if len(displays) == 0 {
		return domain.Configuration{}, domain.ErrNoDisplays
	}
	x.log.Debug("detected displays via xrandr", zap.Int("displays", len(displays)))
	return domain.NewConfiguration(displays), nil
}

var _ domain.DisplayProvider = (*Xrandr)(nil)
