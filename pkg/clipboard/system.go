package clipboard

import (
	"sync"

	xclip "golang.design/x/clipboard"

	"github.com/iconclip/iconclip/pkg/errors"
)

// System writes to the real system clipboard.
//
// The underlying clipboard is initialized once, lazily, on the first
// write. Initialization can fail on headless machines (no display
// server) or when the platform clipboard service is unreachable; every
// write after a failed init returns CLIPBOARD_UNAVAILABLE.
//
// After a successful init the platform write is fire-and-forget: the OS
// reports no per-write status, so a host-denied write cannot be
// distinguished from success here. CLIPBOARD_REJECTED is returned for
// payloads this writer refuses to hand off at all, currently empty ones.
type System struct{}

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		initErr = xclip.Init()
	})
	if initErr != nil {
		return errors.Wrap(errors.ErrCodeClipboardUnavailable, initErr, "system clipboard is not available")
	}
	return nil
}

// WritePNG writes PNG bytes as a typed image.
func (System) WritePNG(data []byte) error {
	if len(data) == 0 {
		return errors.New(errors.ErrCodeClipboardRejected, "refusing to write an empty image payload")
	}
	if err := ensureInit(); err != nil {
		return err
	}
	xclip.Write(xclip.FmtImage, data)
	return nil
}

// WriteSVG writes SVG markup as plain text.
func (System) WriteSVG(data []byte) error {
	if len(data) == 0 {
		return errors.New(errors.ErrCodeClipboardRejected, "refusing to write an empty document payload")
	}
	if err := ensureInit(); err != nil {
		return err
	}
	xclip.Write(xclip.FmtText, data)
	return nil
}
