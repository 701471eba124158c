package render

import (
	"bytes"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/iconclip/iconclip/pkg/errors"
)

// ToPNG rasterizes an assembled SVG document to a sizePx×sizePx RGBA PNG.
//
// The document is decoded with oksvg, scaled to the target square, and
// drawn onto an off-screen surface with rasterx. Pixels not covered by the
// document stay fully transparent, so a style without a background yields
// transparent padding and corners.
//
// Failures (malformed markup, degenerate size) return a
// RASTERIZATION_FAILED error; nothing is swallowed, since a silent failure
// would leave the clipboard unexpectedly empty.
func ToPNG(svg []byte, sizePx int) ([]byte, error) {
	if err := errors.ValidateSize(sizePx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRasterization, err, "invalid raster size")
	}

	ic, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRasterization, err, "decoding SVG document")
	}
	if ic.ViewBox.W <= 0 || ic.ViewBox.H <= 0 {
		return nil, errors.New(errors.ErrCodeRasterization, "SVG document has a degenerate view-box")
	}

	ic.SetTarget(0, 0, float64(sizePx), float64(sizePx))

	img := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	scanner := rasterx.NewScannerGV(sizePx, sizePx, img, img.Bounds())
	dasher := rasterx.NewDasher(sizePx, sizePx, scanner)
	ic.Draw(dasher, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRasterization, err, "encoding PNG")
	}
	return buf.Bytes(), nil
}
