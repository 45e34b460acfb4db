// Package app wires application dependencies for the CLI.
//
// Load resolves Config from flags, environment, an optional config file and
// defaults. NewWire builds the display provider, stores, remote client and
// the wallpaper service from it, exposing them via the Wire struct for
// commands to use.
package app
