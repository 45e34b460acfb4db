package source

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"wallpaper-aligner/internal/domain"
)

// Parse turns one command-line argument into a Source. An empty argument
// means black, hex colors win over file names, and http(s) URLs are accepted
// without being fetched.
func Parse(arg string) (domain.Source, error) {
	if arg == "" {
		return domain.Source{Kind: domain.SourceColor, Color: domain.Black}, nil
	}
	if c, ok := parseHex(arg); ok {
		return domain.Source{Kind: domain.SourceColor, Color: c}, nil
	}
	if isURL(arg) {
		return domain.Source{Kind: domain.SourceURL, Location: arg}, nil
	}
	if err := checkReadable(arg); err == nil {
		return domain.Source{Kind: domain.SourceFile, Location: arg}, nil
	}
	return domain.Source{}, fmt.Errorf("%q: %w", arg, domain.ErrInvalidSource)
}

// ParseAll parses every argument and fails on the first invalid one.
func ParseAll(args []string) ([]domain.Source, error) {
	out := make([]domain.Source, 0, len(args))
	for _, a := range args {
		s, err := Parse(a)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// parseHex accepts #RGB and #RRGGBB.
func parseHex(s string) (color.RGBA, bool) {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return color.RGBA{}, false
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return color.RGBA{}, false
		}
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	return nil
}
