package store

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"wallpaper-aligner/internal/domain"
)

// layoutFile is the on-disk layout document.
type layoutFile struct {
	Displays []layoutDisplay `yaml:"displays"`
}

type layoutDisplay struct {
	Name   string `yaml:"name,omitempty"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LayoutFileStore reads and writes display layouts as YAML documents.
// JSON layouts load as well since JSON is valid YAML.
type LayoutFileStore struct {
	mu sync.Mutex
}

// NewLayoutFileStore returns a LayoutFileStore.
func NewLayoutFileStore() *LayoutFileStore {
	return &LayoutFileStore{}
}

// SaveLayout writes cfg to path in display order.
func (s *LayoutFileStore) SaveLayout(path string, cfg domain.Configuration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeYAML(path, toLayoutFile(cfg), 0o644)
}

// LoadLayout reads the layout at path.
func (s *LayoutFileStore) LoadLayout(path string) (domain.Configuration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lf layoutFile
	ok, err := readYAML(path, &lf)
	if err != nil {
		return domain.Configuration{}, fmt.Errorf("layout %s: %w", path, err)
	}
	if !ok {
		return domain.Configuration{}, fmt.Errorf("layout %s: %w", path, os.ErrNotExist)
	}
	return fromLayoutFile(lf)
}

// MarshalLayout renders cfg as a YAML layout document.
func MarshalLayout(cfg domain.Configuration) ([]byte, error) {
	return yaml.Marshal(toLayoutFile(cfg))
}

func toLayoutFile(cfg domain.Configuration) layoutFile {
	lf := layoutFile{Displays: make([]layoutDisplay, 0, len(cfg.Displays))}
	for _, d := range cfg.Displays {
		w, h := d.Bounds.Resolution()
		lf.Displays = append(lf.Displays, layoutDisplay{
			Name:   d.Name,
			X:      d.Bounds.MinX,
			Y:      d.Bounds.MinY,
			Width:  w,
			Height: h,
		})
	}
	return lf
}

func fromLayoutFile(lf layoutFile) (domain.Configuration, error) {
	if len(lf.Displays) == 0 {
		return domain.Configuration{}, domain.ErrNoDisplays
	}
	displays := make([]domain.Display, 0, len(lf.Displays))
	for i, d := range lf.Displays {
		if d.Width <= 0 || d.Height <= 0 {
			return domain.Configuration{}, fmt.Errorf("display %d: width and height must be positive, got %dx%d", i+1, d.Width, d.Height)
		}
		name := d.Name
		if name == "" {
			name = domain.UnknownDisplayName
		}
		displays = append(displays, domain.Display{
			Name:   name,
			Bounds: domain.Rect(d.X, d.Y, d.Width, d.Height),
		})
	}
	return domain.NewConfiguration(displays), nil
}

// Compile-time assertion that LayoutFileStore implements domain.LayoutStore.
var _ domain.LayoutStore = (*LayoutFileStore)(nil)
