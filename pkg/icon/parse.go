package icon

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/iconclip/iconclip/pkg/errors"
)

// Parse reads a single SVG document into the icon tree model.
//
// Only the shape and container subset is retained: path, circle, rect,
// ellipse, line, polyline, polygon, g. Metadata elements (title, desc,
// defs, style, metadata) and anything else are skipped wholesale, children
// included. Attribute values are kept verbatim, but namespace prefixes on
// attribute names are dropped (xlink:href becomes href); icons are
// self-contained documents that never resolve external references.
//
// The view-box is taken from the root viewBox attribute, falling back to
// explicit width/height when absent (some packs author icons that way).
// A document without an <svg> root, with no view-box, or with no vector
// content yields a MALFORMED_ICON error.
func Parse(name string, data []byte) (*Icon, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Element
	var vb ViewBox
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedIcon, err, "parsing icon %q", name)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			tag := strings.ToLower(t.Name.Local)

			if root == nil {
				if tag != "svg" {
					return nil, errors.New(errors.ErrCodeMalformedIcon, "icon %q: root element is <%s>, want <svg>", name, t.Name.Local)
				}
				root = elementFromToken(t)
				var perr error
				vb, perr = parseViewBox(t.Attr)
				if perr != nil {
					return nil, errors.Wrap(errors.ErrCodeMalformedIcon, perr, "icon %q", name)
				}
				stack = append(stack, root)
				continue
			}

			if !IsShape(tag) && !IsContainer(tag) {
				// Drop metadata and unsupported elements with their subtrees.
				if err := dec.Skip(); err != nil {
					return nil, errors.Wrap(errors.ErrCodeMalformedIcon, err, "parsing icon %q", name)
				}
				continue
			}

			el := elementFromToken(t)
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, el)
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if root == nil {
		return nil, errors.New(errors.ErrCodeMalformedIcon, "icon %q: no <svg> root element", name)
	}
	if vb.W <= 0 || vb.H <= 0 {
		return nil, errors.New(errors.ErrCodeMalformedIcon, "icon %q: missing or degenerate view-box", name)
	}
	if len(root.Children) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedIcon, "icon %q: no vector content", name)
	}

	return &Icon{Name: name, ViewBox: vb, Root: root}, nil
}

// elementFromToken converts an xml start element, preserving attribute
// order and dropping namespace prefixes (icons are plain SVG).
func elementFromToken(t xml.StartElement) *Element {
	el := &Element{Tag: strings.ToLower(t.Name.Local)}
	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		el.Attrs = append(el.Attrs, Attr{Key: a.Name.Local, Value: a.Value})
	}
	return el
}

// parseViewBox extracts the view-box from the root element attributes,
// falling back to width/height when no viewBox attribute is present.
func parseViewBox(attrs []xml.Attr) (ViewBox, error) {
	var vb ViewBox
	var width, height float64

	for _, a := range attrs {
		switch a.Name.Local {
		case "viewBox":
			parts := strings.FieldsFunc(a.Value, func(r rune) bool {
				return r == ',' || r == ' ' || r == '\t' || r == '\n'
			})
			if len(parts) != 4 {
				return vb, errors.New(errors.ErrCodeMalformedIcon, "viewBox needs 4 numbers, got %d", len(parts))
			}
			vals := make([]float64, 4)
			for i, p := range parts {
				v, err := strconv.ParseFloat(p, 64)
				if err != nil {
					return vb, err
				}
				vals[i] = v
			}
			vb = ViewBox{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}
		case "width":
			width, _ = strconv.ParseFloat(strings.TrimSuffix(a.Value, "px"), 64)
		case "height":
			height, _ = strconv.ParseFloat(strings.TrimSuffix(a.Value, "px"), 64)
		}
	}

	if vb.W == 0 {
		vb.W = width
	}
	if vb.H == 0 {
		vb.H = height
	}
	return vb, nil
}
