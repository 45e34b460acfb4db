// Package commands defines the wallpaper-aligner CLI and wires dependencies for subcommands.
//
// Usage
//
//	wallpaper-aligner [flags] [image|color ...]
//
// Each positional argument is drawn on one display, in detection order. An
// argument is a file path, an http(s) URL, a hex color (#RGB or #RRGGBB) or
// an empty string for black.
//
// Commands
//
//   - layout export  Write the detected display layout as YAML
//   - version        Print the build version
//
// # Implementation
//
// The root command loads configuration and builds a dependency graph
// (display provider, stores, remote client, wallpaper service, prompts)
// before any subcommand runs, so handlers share one app context.
package commands
