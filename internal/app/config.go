package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"wallpaper-aligner/internal/domain"
	"wallpaper-aligner/internal/imaging"
	"wallpaper-aligner/internal/logger"
	"wallpaper-aligner/internal/remote"
)

// EnvPrefix prefixes every environment override, e.g. WALLPAPER_ALIGNER_MODE.
const EnvPrefix = "WALLPAPER_ALIGNER"

// DefaultOutput is the wallpaper file name used when none is given.
const DefaultOutput = "wallpaper.jpg"

// Config holds runtime options for building the app.
type Config struct {
	Output  string
	Force   bool
	Mode    domain.ResizeMode
	Filter  domain.Filter
	Quality int
	Layout  string // layout file; empty means ask the OS
	Workers int    // concurrent image decodes, 0 means one per CPU
	Log     logger.Config
	HTTP    HTTPConfig
}

// HTTPConfig controls downloads of URL sources.
type HTTPConfig struct {
	Timeout  time.Duration
	MaxBytes int64
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"output":     "output",
	"force":      "force",
	"mode":       "mode",
	"filter":     "filter",
	"quality":    "quality",
	"layout":     "layout",
	"verbose":    "verbose",
	"log.format": "log-format",
}

func setDefaults(v *viper.Viper) {
	def := logger.DefaultConfig()
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("force", false)
	v.SetDefault("mode", domain.ResizeStretch.String())
	v.SetDefault("filter", domain.FilterCatmullRom.String())
	v.SetDefault("quality", imaging.DefaultQuality)
	v.SetDefault("layout", "")
	v.SetDefault("workers", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.format", def.Format)
	v.SetDefault("log.output", def.Output)
	v.SetDefault("log.time_format", def.TimeFormat)
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.max_bytes", remote.DefaultMaxBytes)
}

// Load resolves configuration.
// Priority (highest to lowest):
// 1. Flags that were set on the command line
// 2. Environment variables with WALLPAPER_ALIGNER_ prefix (e.g. WALLPAPER_ALIGNER_LOG_LEVEL)
// 3. configFile, or config.yaml under the user config directory
// 4. Built-in defaults
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else if dir := DefaultConfigDir(); dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{
		Output:  v.GetString("output"),
		Force:   v.GetBool("force"),
		Quality: v.GetInt("quality"),
		Layout:  v.GetString("layout"),
		Workers: v.GetInt("workers"),
		Log: logger.Config{
			Level:      v.GetString("log.level"),
			Format:     v.GetString("log.format"),
			Output:     v.GetString("log.output"),
			TimeFormat: v.GetString("log.time_format"),
		},
		HTTP: HTTPConfig{
			Timeout:  v.GetDuration("http.timeout"),
			MaxBytes: v.GetInt64("http.max_bytes"),
		},
	}
	if v.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}

	var err error
	if cfg.Mode, err = domain.ParseResizeMode(v.GetString("mode")); err != nil {
		return nil, err
	}
	if cfg.Filter, err = domain.ParseFilter(v.GetString("filter")); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be parsed into a narrower type.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output file name must not be empty")
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", c.Quality)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.HTTP.MaxBytes <= 0 {
		return fmt.Errorf("http.max_bytes must be positive, got %d", c.HTTP.MaxBytes)
	}
	return nil
}

// DefaultConfigDir returns the directory searched for config.yaml, or "" when
// the user config directory is unknown.
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wallpaper-aligner")
}

// LoadDotenv exports the variables in path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// NormalizeOutputName appends ".jpg" unless name already ends in .jpg or
// .jpeg (any case).
func NormalizeOutputName(name string) string {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
		return name
	}
	return name + ".jpg"
}
