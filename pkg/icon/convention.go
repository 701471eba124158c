package icon

import "github.com/iconclip/iconclip/pkg/errors"

// Convention describes how an icon pack carries color.
// Each pack declares exactly one convention in its manifest; the colorizer
// dispatches on it when rewriting paint attributes.
type Convention int

const (
	// Unknown applies color to whichever paint attribute a shape already
	// carries, leaving absent attributes untouched. Fallback for
	// mixed-origin content.
	Unknown Convention = iota

	// StrokeBased marks packs drawn as outlines (line art). Color lives on
	// the stroke; fill stays "none".
	StrokeBased

	// FillBased marks packs drawn as solid shapes. Color lives on the
	// fill; stroke stays "none".
	FillBased
)

// String returns the manifest spelling of the convention.
func (c Convention) String() string {
	switch c {
	case StrokeBased:
		return "stroke"
	case FillBased:
		return "fill"
	default:
		return "unknown"
	}
}

// ParseConvention parses the manifest spelling of a convention.
// The empty string maps to Unknown so manifests may omit the field.
func ParseConvention(s string) (Convention, error) {
	switch s {
	case "stroke":
		return StrokeBased, nil
	case "fill":
		return FillBased, nil
	case "unknown", "":
		return Unknown, nil
	default:
		return Unknown, errors.New(errors.ErrCodeInvalidPack, "unknown pack convention: %q (must be 'stroke', 'fill', or 'unknown')", s)
	}
}
