// Package source interprets wallpaper arguments.
//
// Each positional argument is one of:
//
//	""                 black, the display is left untouched
//	#RGB / #RRGGBB     a solid color
//	http(s)://...      an image downloaded at compose time
//	path               an existing image file
//
// Colors are checked before files, so a file literally named "#fff" can only
// be passed as "./#fff".
package source
