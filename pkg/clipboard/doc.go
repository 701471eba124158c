// Package clipboard writes rendered artifacts to the system clipboard.
//
// PNG payloads are written as typed image data, which paste targets
// (chat apps, slide editors, image tools) recognize natively. SVG has no
// portable clipboard image type across platforms, so SVG payloads are
// written as plain text; paste targets that understand SVG markup
// (design tools, text editors) pick it up from there.
//
// [System] talks to the real clipboard and initializes it lazily on the
// first write. [Memory] is an in-process capture used by tests and
// dry runs.
package clipboard
