package clipboard

import (
	"bytes"
	"testing"

	"github.com/iconclip/iconclip/pkg/errors"
)

func TestMemoryCapturesWrites(t *testing.T) {
	var m Memory

	if err := m.WritePNG([]byte{0x89, 'P', 'N', 'G'}); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	kind, data := m.Last()
	if kind != KindImage {
		t.Errorf("kind = %q, want %q", kind, KindImage)
	}
	if !bytes.Equal(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Errorf("data = %v, want PNG header bytes", data)
	}

	if err := m.WriteSVG([]byte("<svg/>")); err != nil {
		t.Fatalf("WriteSVG() error: %v", err)
	}
	if kind, _ := m.Last(); kind != KindText {
		t.Errorf("kind after SVG write = %q, want %q", kind, KindText)
	}
}

func TestMemoryCopiesPayload(t *testing.T) {
	var m Memory
	payload := []byte("<svg/>")
	if err := m.WriteSVG(payload); err != nil {
		t.Fatalf("WriteSVG() error: %v", err)
	}
	payload[0] = 'x'

	if _, data := m.Last(); data[0] != '<' {
		t.Error("stored payload aliases the caller's slice")
	}
}

func TestEmptyPayloadRejected(t *testing.T) {
	writers := map[string]Writer{
		"memory": &Memory{},
		"system": System{},
	}
	for name, w := range writers {
		t.Run(name, func(t *testing.T) {
			if code := errors.GetCode(w.WritePNG(nil)); code != errors.ErrCodeClipboardRejected {
				t.Errorf("WritePNG(nil) code = %v, want CLIPBOARD_REJECTED", code)
			}
			if code := errors.GetCode(w.WriteSVG(nil)); code != errors.ErrCodeClipboardRejected {
				t.Errorf("WriteSVG(nil) code = %v, want CLIPBOARD_REJECTED", code)
			}
		})
	}
}
