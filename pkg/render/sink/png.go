package sink

import (
	"github.com/iconclip/iconclip/pkg/errors"
	"github.com/iconclip/iconclip/pkg/icon"
	"github.com/iconclip/iconclip/pkg/render"
)

// RenderPNG assembles the styled SVG document and rasterizes it to a
// style.SizePx square PNG via [render.ToPNG].
//
// A malformed icon (no vector root) yields a MALFORMED_ICON error rather
// than the nil-result convention of [RenderSVG], because PNG callers have
// no artifact to inspect.
func RenderPNG(ic *icon.Icon, style render.Style, conv icon.Convention) ([]byte, error) {
	svg := RenderSVG(ic, style, conv)
	if svg == nil {
		name := "icon"
		if ic != nil {
			name = ic.Name
		}
		return nil, errors.New(errors.ErrCodeMalformedIcon, "%s has no vector content to rasterize", name)
	}
	return render.ToPNG(svg, style.SizePx)
}
