package icon

import "strings"

// ViewBox is the rectangle a vector icon is authored in.
// Origin is top-left; units are abstract view-box units.
type ViewBox struct {
	X float64
	Y float64
	W float64
	H float64
}

// Min returns the shorter of the two view-box dimensions.
func (vb ViewBox) Min() float64 {
	if vb.W < vb.H {
		return vb.W
	}
	return vb.H
}

// Attr is a single presentation attribute on an element.
// Attribute order is preserved so serialized output is deterministic.
type Attr struct {
	Key   string
	Value string
}

// Element is one node of an icon's vector tree: either a shape primitive
// or a container (group) holding further elements.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value in place or
// appending a new attribute. Replacing in place keeps attribute order stable
// across repeated rewrites.
func (e *Element) SetAttr(key, value string) {
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
}

// DelAttr removes the named attribute if present.
func (e *Element) DelAttr(key string) {
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy of the element tree.
// Renderers always transform a clone; the catalog's tree stays pristine.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	c := &Element{Tag: e.Tag}
	if len(e.Attrs) > 0 {
		c.Attrs = make([]Attr, len(e.Attrs))
		copy(c.Attrs, e.Attrs)
	}
	if len(e.Children) > 0 {
		c.Children = make([]*Element, len(e.Children))
		for i, ch := range e.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}

// shapeTags is the set of leaf shape primitives iconclip renders.
var shapeTags = map[string]bool{
	"path":     true,
	"circle":   true,
	"rect":     true,
	"ellipse":  true,
	"line":     true,
	"polyline": true,
	"polygon":  true,
}

// containerTags is the set of elements that group other elements.
var containerTags = map[string]bool{
	"svg": true,
	"g":   true,
}

// IsShape reports whether tag names a supported leaf shape primitive.
func IsShape(tag string) bool {
	return shapeTags[strings.ToLower(tag)]
}

// IsContainer reports whether tag names a group-like container element.
func IsContainer(tag string) bool {
	return containerTags[strings.ToLower(tag)]
}

// Icon is an immutable vector icon: a name, the view-box it was authored
// in, and the root of its element tree (the <svg> element).
type Icon struct {
	Name    string
	ViewBox ViewBox
	Root    *Element
}

// Clone returns a deep copy of the icon suitable for transformation.
func (ic *Icon) Clone() *Icon {
	if ic == nil {
		return nil
	}
	return &Icon{Name: ic.Name, ViewBox: ic.ViewBox, Root: ic.Root.Clone()}
}
