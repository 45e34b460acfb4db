// Package display detects the monitor layout.
//
// Providers
//
//   - Windows   EnumDisplayMonitors for bounds, QueryDisplayConfig for
//     friendly monitor names
//   - Linux     the X11 RandR extension, then `xrandr --query`
//   - File      a YAML/JSON layout passed with --layout, on any platform
//
// NewPlatform returns the provider for the running OS; other platforms get a
// provider that fails with domain.ErrUnsupportedPlatform.
package display
