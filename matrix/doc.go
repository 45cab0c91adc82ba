// Package matrix implements the incremental rendering engine for a small
// addressable LED matrix (64x32 by default) showing presence status, sensor
// readings and call state.
//
// The engine is tick driven: the device main loop hands it a DisplayData
// snapshot once per iteration and the Renderer decides which page to show,
// which regions actually changed, and redraws only those. All mutable render
// state (line caches, border cache, scroll states, current page) lives on the
// Renderer; the snapshot is never mutated.
//
// Pixels are written through the Driver interface, a pixel/rect level
// abstraction over the panel framebuffer. The DMA transmission of that
// framebuffer is the driver's business and happens outside this package.
package matrix
