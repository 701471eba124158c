package errors

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/image/colornames"
)

// hexColorRegex matches #RGB and #RRGGBB hex colors.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a paint color string.
// Accepted forms are #RGB / #RRGGBB hex notation and the SVG 1.1 named
// colors ("black", "rebeccapurple", ...). The match for named colors is
// case-insensitive, matching how SVG consumers resolve them.
func ValidateColor(raw string) error {
	if raw == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}

	if strings.HasPrefix(raw, "#") {
		if !hexColorRegex.MatchString(raw) {
			return New(ErrCodeInvalidColor, "invalid hex color: %q", raw)
		}
		return nil
	}

	if _, ok := colornames.Map[strings.ToLower(raw)]; !ok {
		return New(ErrCodeInvalidColor, "unknown color name: %q", raw)
	}
	return nil
}

// ValidateBackground validates a background color string.
// In addition to everything ValidateColor accepts, the sentinel value
// "transparent" (and the empty string, treated as transparent) is allowed.
func ValidateBackground(raw string) error {
	if raw == "" || raw == "transparent" {
		return nil
	}
	if err := ValidateColor(raw); err != nil {
		return New(ErrCodeInvalidColor, "invalid background color: %q", raw)
	}
	return nil
}

// packNameRegex matches valid pack and icon names: lowercase alphanumerics
// with single dashes, the usual naming scheme of published icon sets.
var packNameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidatePackName validates an icon pack name for safety and correctness.
// It rejects names that could be used for path traversal, since pack names
// become directory names under the catalog root.
func ValidatePackName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPack, "pack name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidPack, "pack name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPack, "pack name contains control characters")
		}
	}

	if !packNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPack, "invalid pack name: %q", name)
	}
	return nil
}

// ValidateIconName validates an icon name within a pack.
// Icon names share the pack naming scheme; they map to files on disk, so the
// same traversal concerns apply.
func ValidateIconName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRef, "icon name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidRef, "icon name too long (max 128 characters)")
	}

	if !packNameRegex.MatchString(name) {
		return New(ErrCodeInvalidRef, "invalid icon name: %q", name)
	}
	return nil
}

// ValidateSize validates a pixel output size.
func ValidateSize(px int) error {
	const maxSize = 4096
	if px <= 0 {
		return New(ErrCodeInvalidStyle, "size must be positive, got %d", px)
	}
	if px > maxSize {
		return New(ErrCodeInvalidStyle, "size too large: %d (max %d)", px, maxSize)
	}
	return nil
}
