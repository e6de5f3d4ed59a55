// Package ggsurface implements surface.Context2D on a gogpu/gg software
// raster context, so canvas2d scenes can be rendered headless, saved as
// PNG, or blitted to a window by ebitenhost.
//
// Differences from a browser canvas:
//
//   - FillRect, StrokeRect and ClearRect replace the current path.
//   - Text is placed through the full transform but glyphs are not
//     rotated, and StrokeText paints glyphs solid in the stroke color.
//   - Font families map to the Go fonts: monospace families to Go Mono,
//     everything else to Go.
package ggsurface
