// Package sink assembles styled icons into output documents.
//
// # SVG Assembly
//
// [RenderSVG] composes the layered document in exact paint order:
//
//  1. clip-path definitions (when corners are rounded)
//  2. background rectangle (when a background color is set)
//  3. padding guard rectangle (when padding is applied)
//  4. recolored icon content, optionally wrapped in the clip group
//
// The order is load-bearing: SVG paints in document order, and several
// downstream consumers (diagramming tools, clipboard previews) rely on it.
// The result is fully self-contained: explicit width/height and viewBox,
// xmlns declared, every paint attribute resolved inline, no CSS classes or
// external references. It survives round-tripping through the clipboard
// and back into arbitrary viewers.
//
// # PNG
//
// [RenderPNG] is a convenience wrapper that assembles the SVG and
// rasterizes it via [render.ToPNG].
//
// [render.ToPNG]: github.com/iconclip/iconclip/pkg/render.ToPNG
package sink
