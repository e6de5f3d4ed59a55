// Package surface defines the host contract that canvas2d draws through: a
// canvas-style 2D drawing context, its paint objects, a 2×3 affine matrix,
// image handles that may still be loading, and the per-refresh frame
// scheduler.
//
// Concrete hosts live in sibling packages. ggsurface implements Context2D on
// a gogpu/gg software raster context and ebitenhost implements
// FrameScheduler and Display for a desktop window.
package surface
