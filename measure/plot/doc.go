// Package plot renders error curves of the math kernel as raster images and
// encodes them as lossless WebP.
//
// Lines are drawn on a canvas enlarged by the supersample factor and scaled
// down with a Catmull-Rom filter, which smooths the otherwise aliased
// polylines.
package plot
