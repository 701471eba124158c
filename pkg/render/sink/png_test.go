package sink

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/iconclip/iconclip/pkg/errors"
	"github.com/iconclip/iconclip/pkg/icon"
	"github.com/iconclip/iconclip/pkg/render"
)

func TestRenderPNGDimensions(t *testing.T) {
	data, err := RenderPNG(testIcon(t), style(nil), icon.StrokeBased)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 128 || b.Dy() != 128 {
		t.Errorf("dimensions = %dx%d, want 128x128", b.Dx(), b.Dy())
	}
}

func TestRenderPNGTransparentBackground(t *testing.T) {
	s := style(func(s *render.Style) {
		s.Padding = 0.1
	})
	data, err := RenderPNG(testIcon(t), s, icon.StrokeBased)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	// The guard rectangle's opacity is far below one alpha step, so the
	// padded corners must decode fully transparent.
	for _, p := range [][2]int{{0, 0}, {127, 0}, {0, 127}, {127, 127}} {
		if _, _, _, a := img.At(p[0], p[1]).RGBA(); a != 0 {
			t.Errorf("corner (%d,%d) alpha = %d, want 0", p[0], p[1], a)
		}
	}
}

func TestRenderPNGSolidBackground(t *testing.T) {
	s := style(func(s *render.Style) {
		s.Background = "#112233"
	})
	data, err := RenderPNG(testIcon(t), s, icon.StrokeBased)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	for _, p := range [][2]int{{2, 2}, {125, 2}, {2, 125}, {125, 125}} {
		if _, _, _, a := img.At(p[0], p[1]).RGBA(); a != 0xffff {
			t.Errorf("corner (%d,%d) alpha = %d, want opaque", p[0], p[1], a)
		}
	}
}

func TestRenderPNGMalformed(t *testing.T) {
	_, err := RenderPNG(nil, style(nil), icon.StrokeBased)
	if errors.GetCode(err) != errors.ErrCodeMalformedIcon {
		t.Errorf("error code = %v, want MALFORMED_ICON", errors.GetCode(err))
	}
}
