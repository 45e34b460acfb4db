// Package store provides file-based persistence for wallpaper-aligner.
//
// It contains concrete implementations of the domain storage interfaces.
// Every write goes through a temp file in the target directory followed by a
// rename, so an interrupted run never leaves a truncated wallpaper or layout
// behind.
//
// The package includes stores for:
//   - Display layouts as YAML documents (LayoutFileStore)
//   - Encoded wallpapers (WallpaperFileStore)
package store
