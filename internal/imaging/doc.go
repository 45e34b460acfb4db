// Package imaging holds the pixel work: decoding source images, computing
// per-display target sizes, resampling, compositing onto the virtual-screen
// canvas, and JPEG encoding.
//
// Supported input formats are JPEG, PNG, GIF, BMP, TIFF and WebP. Resampling
// uses the golang.org/x/image/draw kernels.
package imaging
