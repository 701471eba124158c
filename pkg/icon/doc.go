// Package icon defines the vector icon model used throughout iconclip.
//
// An [Icon] is an immutable tree of shape primitives (path, circle, rect,
// ellipse, line, polyline, polygon) and group nodes, plus a square-ish
// [ViewBox] describing the coordinate system the icon is authored in.
// Icons are parsed once from SVG source by the catalog and never mutated in
// place; renderers call [Element.Clone] and transform the copy.
//
// # Pack Conventions
//
// Icon packs differ in how glyphs carry color. A Feather-style pack draws
// outlines (color lives on the stroke), a Phosphor-fill-style pack draws
// solid shapes (color lives on the fill). [Convention] captures this per
// pack so the colorizer can rewrite paint attributes correctly:
//
//	conv, err := icon.ParseConvention("stroke")
//	// conv == icon.StrokeBased
//
// # Parsing
//
// [Parse] reads a single SVG document into the tree model. Only the shape
// and group subset needed for icons is retained; title, desc, defs and
// other metadata elements are dropped:
//
//	ic, err := icon.Parse("heart", svgBytes)
//	if err != nil {
//	    // MALFORMED_ICON: no usable vector root
//	}
package icon
