package sink

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iconclip/iconclip/pkg/icon"
	"github.com/iconclip/iconclip/pkg/render"
	"github.com/iconclip/iconclip/pkg/render/colorize"
	"github.com/iconclip/iconclip/pkg/render/layout"
)

// Empirically-motivated corrections for specific downstream consumers.
// Kept as named constants because their exact values may need
// environment-specific tuning.
const (
	// GuardOpacity is the opacity of the padding guard rectangle. Some
	// vector-diagram import tools compute a document's bounding box from
	// painted content and silently crop transparent padding; a
	// near-invisible rectangle forces them to honor the padded canvas.
	GuardOpacity = "0.001"

	// StrokeClipBuffer is the outward inflation, in view-box units, of the
	// rounded clip rectangle for stroke-based packs. Without it the clip
	// shaves visible stroke thickness off glyphs that touch the edges.
	StrokeClipBuffer = 1.0
)

// clipID is the id of the rounded-container clip path. The document is
// standalone, so a fixed id cannot collide.
const clipID = "container-clip"

const xmlPreamble = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// RenderSVG assembles a styled, self-contained SVG document for the icon.
//
// The icon tree is cloned before any transformation; the input is never
// mutated. Callers pass a pre-clamped style; see [render.Style.Clamped].
//
// Returns nil when the icon has no extractable vector root. That is the
// only failure mode and is deliberately not an error: callers check for
// nil and surface MALFORMED_ICON themselves.
func RenderSVG(ic *icon.Icon, style render.Style, conv icon.Convention) []byte {
	if ic == nil || ic.Root == nil || len(ic.Root.Children) == 0 {
		return nil
	}

	root := ic.Root.Clone()
	colorize.Apply(root, style.Color, conv)

	box := layout.Expand(ic.ViewBox, style.Padding)
	radius := layout.CornerRadius(box, style.CornerRadius)
	rounded := style.CornerRadius > 0

	var buf bytes.Buffer
	buf.WriteString(xmlPreamble)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%s %s %s %s">`+"\n",
		style.SizePx, style.SizePx, num(box.X), num(box.Y), num(box.W), num(box.H))

	if rounded {
		writeClipDefs(&buf, box, radius, conv)
	}
	if style.Background != "" && style.Background != render.Transparent {
		writeBackground(&buf, box, radius, style.Background)
	}
	if style.Padding > 0 {
		writeGuard(&buf, box)
	}

	depth := 1
	if rounded {
		fmt.Fprintf(&buf, `  <g clip-path="url(#%s)">`+"\n", clipID)
		depth = 2
	}
	for _, ch := range root.Children {
		writeElement(&buf, ch, depth)
	}
	if rounded {
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// writeClipDefs emits the rounded-rectangle clip path sized to the
// expanded box. Stroke-based packs get the clip rectangle inflated by
// StrokeClipBuffer so edge-touching strokes keep their full width;
// fill-based and unknown packs clip exactly at the box.
func writeClipDefs(buf *bytes.Buffer, box icon.ViewBox, radius float64, conv icon.Convention) {
	clip := box
	if conv == icon.StrokeBased {
		clip.X -= StrokeClipBuffer
		clip.Y -= StrokeClipBuffer
		clip.W += 2 * StrokeClipBuffer
		clip.H += 2 * StrokeClipBuffer
	}
	fmt.Fprintf(buf, `  <defs><clipPath id="%s"><rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s"/></clipPath></defs>`+"\n",
		clipID, num(clip.X), num(clip.Y), num(clip.W), num(clip.H), num(radius), num(radius))
}

// writeBackground emits the background rectangle. It must paint before all
// icon content, immediately after any defs.
func writeBackground(buf *bytes.Buffer, box icon.ViewBox, radius float64, color string) {
	if radius > 0 {
		fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" fill="%s"/>`+"\n",
			num(box.X), num(box.Y), num(box.W), num(box.H), num(radius), num(radius), escape(color))
		return
	}
	fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(box.X), num(box.Y), num(box.W), num(box.H), escape(color))
}

// writeGuard emits the functionally invisible guard rectangle spanning the
// full expanded box, after the background and before icon content.
func writeGuard(buf *bytes.Buffer, box icon.ViewBox) {
	fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="#ffffff" opacity="%s"/>`+"\n",
		num(box.X), num(box.Y), num(box.W), num(box.H), GuardOpacity)
}

// writeElement serializes one element subtree with two-space indentation.
func writeElement(buf *bytes.Buffer, el *icon.Element, depth int) {
	indent := strings.Repeat("  ", depth)
	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(el.Tag)
	for _, a := range el.Attrs {
		fmt.Fprintf(buf, ` %s="%s"`, a.Key, escape(a.Value))
	}

	if len(el.Children) == 0 {
		buf.WriteString("/>\n")
		return
	}

	buf.WriteString(">\n")
	for _, ch := range el.Children {
		writeElement(buf, ch, depth+1)
	}
	buf.WriteString(indent)
	fmt.Fprintf(buf, "</%s>\n", el.Tag)
}

// attrEscaper escapes the characters XML forbids inside a double-quoted
// attribute value.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return attrEscaper.Replace(s)
}

// num formats a view-box coordinate compactly. Values are rounded to four
// decimals first so padding math like 24*0.10 prints as "2.4" rather than
// a float artifact.
func num(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // normalize -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
