// Package render turns catalog icons into shareable artifacts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms an icon plus
// a [Style] into self-contained output documents. It provides:
//
//   - Style configuration with entry-point clamping ([Style])
//   - SVG to PNG rasterization ([ToPNG])
//   - View-box geometry (in [layout] subpackage)
//   - Pack-aware recoloring (in [colorize] subpackage)
//   - Document assembly and serialization (in [sink] subpackage)
//
// # Rendering
//
// The [sink] subpackage assembles the final SVG document: expanded
// view-box, recolored shapes, optional rounded-corner clip, background and
// padding-guard geometry, serialized in exact paint order. [ToPNG]
// rasterizes any such document to a square PNG:
//
//	svg := sink.RenderSVG(ic, style, conv)
//	png, err := render.ToPNG(svg, style.SizePx)
//
// # Geometry and Color
//
// [layout] computes the padded view-box and corner radius in view-box
// units; [colorize] rewrites stroke/fill attributes according to the pack's
// convention. Both operate on cloned trees, never on catalog state.
//
// [layout]: github.com/iconclip/iconclip/pkg/render/layout
// [colorize]: github.com/iconclip/iconclip/pkg/render/colorize
// [sink]: github.com/iconclip/iconclip/pkg/render/sink
package render
