// Package raster implements the software compositing primitives used by the
// shadow effect: binary masks, tinted silhouettes, Porter-Duff compositing,
// Gaussian blur and sub-pixel translation over premultiplied RGBA surfaces.
//
// Surfaces always have their origin at (0, 0). Compositing clips to the
// destination; pixels the source does not cover are left untouched, the way
// a painter only affects the area it draws into.
package raster
