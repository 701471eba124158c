package clipboard

// Kind identifies the clipboard representation of a payload.
type Kind string

const (
	// KindImage is typed PNG image data.
	KindImage Kind = "image"
	// KindText is plain text, used for SVG markup.
	KindText Kind = "text"
)

// Writer places rendered artifacts on a clipboard.
//
// Implementations must reject empty payloads with CLIPBOARD_REJECTED and
// must not retain the slice after returning. Note that [System] cannot
// observe a write the host denies after handoff: the platform API is
// fire-and-forget, so for the system clipboard CLIPBOARD_REJECTED covers
// only payloads the writer itself refuses.
type Writer interface {
	// WritePNG writes PNG bytes as a typed image.
	WritePNG(data []byte) error
	// WriteSVG writes SVG markup as plain text.
	WriteSVG(data []byte) error
}
