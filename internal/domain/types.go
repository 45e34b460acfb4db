package domain

import (
	"fmt"
	"image/color"
	"strings"
)

// UnknownDisplayName is used when the platform reports no friendly name.
const UnknownDisplayName = "Unknown"

// Display is a single monitor and its bounds on the virtual screen.
type Display struct {
	Name   string
	Bounds Rectangle
}

// Configuration is the set of active displays in enumeration order plus the
// bounding box of all of them (the virtual screen).
type Configuration struct {
	Bounds   Rectangle
	Displays []Display
}

// NewConfiguration computes Bounds as the union of all display bounds.
func NewConfiguration(displays []Display) Configuration {
	cfg := Configuration{Displays: displays}
	for i, d := range displays {
		if i == 0 {
			cfg.Bounds = d.Bounds
			continue
		}
		cfg.Bounds = cfg.Bounds.Union(d.Bounds)
	}
	return cfg
}

// Normalize shifts every display so the virtual screen starts at (0,0).
func (c *Configuration) Normalize() *Configuration {
	for i := range c.Displays {
		c.Displays[i].Bounds.MoveBy(-c.Bounds.MinX, -c.Bounds.MinY)
	}
	c.Bounds.Normalize()
	return c
}

// Normalized returns a normalized deep copy of c.
func (c Configuration) Normalized() Configuration {
	clone := Configuration{
		Bounds:   c.Bounds,
		Displays: append([]Display(nil), c.Displays...),
	}
	clone.Normalize()
	return clone
}

// ResizeMode controls how a source image is fitted to its display.
type ResizeMode int

const (
	// ResizeStretch fills the entire display, scaling disproportionally as needed.
	ResizeStretch ResizeMode = iota
	// ResizeFill fills the entire display, scaling proportionally and cropping the overflow.
	ResizeFill
	// ResizeFit fits the entire image into the display, scaling proportionally.
	ResizeFit
)

var resizeModeNames = map[ResizeMode]string{
	ResizeStretch: "stretch",
	ResizeFill:    "fill",
	ResizeFit:     "fit",
}

func (m ResizeMode) String() string {
	if s, ok := resizeModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("ResizeMode(%d)", int(m))
}

// ParseResizeMode parses a mode name case-insensitively.
func ParseResizeMode(s string) (ResizeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stretch", "":
		return ResizeStretch, nil
	case "fill":
		return ResizeFill, nil
	case "fit":
		return ResizeFit, nil
	}
	return 0, fmt.Errorf("invalid resize mode %q (want stretch, fill or fit)", s)
}

// Filter selects the resampling kernel used when resizing.
type Filter int

const (
	FilterCatmullRom Filter = iota
	FilterBilinear
	FilterApproxBilinear
	FilterNearest
)

var filterNames = map[Filter]string{
	FilterCatmullRom:     "catmull-rom",
	FilterBilinear:       "bilinear",
	FilterApproxBilinear: "approx-bilinear",
	FilterNearest:        "nearest",
}

func (f Filter) String() string {
	if s, ok := filterNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter parses a filter name case-insensitively.
func ParseFilter(s string) (Filter, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FilterCatmullRom, nil
	}
	for f, n := range filterNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("invalid filter %q (want catmull-rom, bilinear, approx-bilinear or nearest)", s)
}

// SourceKind tells how a Source is turned into pixels.
type SourceKind int

const (
	SourceColor SourceKind = iota
	SourceFile
	SourceURL
)

// Source is what to draw on one display: a solid color, or an image loaded
// from Location (a file path or an http(s) URL).
type Source struct {
	Kind     SourceKind
	Color    color.RGBA
	Location string
}

// Black is the solid color used for skipped displays.
var Black = color.RGBA{A: 0xff}

// IsBlack reports whether s is a solid black color.
func (s Source) IsBlack() bool {
	return s.Kind == SourceColor && s.Color == Black
}

func (s Source) String() string {
	if s.Kind == SourceColor {
		return fmt.Sprintf("#%02X%02X%02X", s.Color.R, s.Color.G, s.Color.B)
	}
	return s.Location
}
