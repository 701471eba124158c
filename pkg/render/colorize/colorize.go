// Package colorize rewrites paint attributes on a cloned icon tree.
//
// The rewrite is a pure overwrite driven by the pack's [icon.Convention]:
// stroke-based packs carry color on the stroke, fill-based packs on the
// fill, and unknown packs keep whatever attribute is already present.
// Containers never carry paint; the serialized standalone document has no
// CSS cascade for children to inherit from, so color must live on leaves.
package colorize

import (
	"strconv"
	"strings"

	"github.com/iconclip/iconclip/pkg/icon"
)

// DefaultStrokeWidth is the stroke width, in view-box units, forced onto
// stroke-based shapes that omit or zero their own. Detached from its
// original document a shape loses inherited widths, and a zero-width stroke
// renders nothing.
const DefaultStrokeWidth = 2.0

// Apply recursively recolors every shape and group node of a cloned tree.
//
// Shapes are rewritten per the convention; containers are stripped of any
// stroke/fill/stroke-width they carry. Inline style declarations for
// color, stroke, or fill are removed everywhere, since inline style takes
// paint precedence over attributes and would silently override the
// recolor. Applying twice with the same color is a no-op.
func Apply(el *icon.Element, color string, conv icon.Convention) {
	if el == nil {
		return
	}

	if icon.IsContainer(el.Tag) {
		el.DelAttr("stroke")
		el.DelAttr("fill")
		el.DelAttr("stroke-width")
	} else if icon.IsShape(el.Tag) {
		applyShape(el, color, conv)
	}

	cleanStyle(el)

	for _, ch := range el.Children {
		Apply(ch, color, conv)
	}
}

// applyShape rewrites the paint attributes of a single leaf shape.
func applyShape(el *icon.Element, color string, conv icon.Convention) {
	switch conv {
	case icon.StrokeBased:
		el.SetAttr("stroke", color)
		el.SetAttr("fill", "none")
		if !hasVisibleStrokeWidth(el) {
			el.SetAttr("stroke-width", formatWidth(DefaultStrokeWidth))
		}

	case icon.FillBased:
		el.SetAttr("fill", color)
		if _, ok := el.Attr("stroke"); ok {
			el.SetAttr("stroke", "none")
		}

	default: // icon.Unknown
		if v, ok := el.Attr("stroke"); ok && v != "none" {
			el.SetAttr("stroke", color)
		}
		if v, ok := el.Attr("fill"); ok && v != "none" {
			el.SetAttr("fill", color)
		}
	}
}

// hasVisibleStrokeWidth reports whether the element carries an explicit,
// positive stroke-width.
func hasVisibleStrokeWidth(el *icon.Element) bool {
	v, ok := el.Attr("stroke-width")
	if !ok {
		return false
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil && w > 0
}

// paintProperties are the inline style declarations that would override the
// recolored attributes.
var paintProperties = map[string]bool{
	"color":  true,
	"stroke": true,
	"fill":   true,
}

// cleanStyle strips paint declarations from an inline style attribute,
// dropping the attribute entirely when nothing remains.
func cleanStyle(el *icon.Element) {
	raw, ok := el.Attr("style")
	if !ok {
		return
	}

	var kept []string
	for _, decl := range strings.Split(raw, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, _, found := strings.Cut(decl, ":")
		if found && paintProperties[strings.ToLower(strings.TrimSpace(name))] {
			continue
		}
		kept = append(kept, decl)
	}

	if len(kept) == 0 {
		el.DelAttr("style")
		return
	}
	el.SetAttr("style", strings.Join(kept, "; "))
}

// formatWidth renders a stroke width without a trailing ".0".
func formatWidth(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
