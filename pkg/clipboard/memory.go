package clipboard

import (
	"sync"

	"github.com/iconclip/iconclip/pkg/errors"
)

// Memory captures writes in process instead of touching the system
// clipboard. Safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	kind Kind
	data []byte
}

// WritePNG records PNG bytes as the current payload.
func (m *Memory) WritePNG(data []byte) error {
	return m.set(KindImage, data)
}

// WriteSVG records SVG markup as the current payload.
func (m *Memory) WriteSVG(data []byte) error {
	return m.set(KindText, data)
}

func (m *Memory) set(kind Kind, data []byte) error {
	if len(data) == 0 {
		return errors.New(errors.ErrCodeClipboardRejected, "refusing to write an empty payload")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kind = kind
	m.data = append([]byte(nil), data...)
	return nil
}

// Last returns the most recent payload and its kind, or ("", nil) when
// nothing has been written.
func (m *Memory) Last() (Kind, []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kind, append([]byte(nil), m.data...)
}
