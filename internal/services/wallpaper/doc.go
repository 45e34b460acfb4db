// Package wallpaper composes the spanning wallpaper.
//
// Generate detects the display layout, checks it against the sources, loads
// and resizes image sources concurrently, paints everything onto a canvas in
// display order and encodes the result as JPEG. A source that cannot be
// loaded, detected or decoded becomes a Warning and its display stays black.
package wallpaper
