// Package layout computes view-box geometry for rendered icons.
//
// Padding and corner radius are expressed relative to the icon's own
// coordinate system, so the math happens in view-box units and stays
// independent of the final pixel output size. All functions are pure;
// callers clamp inputs before handing them over.
package layout

import "github.com/iconclip/iconclip/pkg/icon"

// Expand grows a view-box symmetrically by a padding fraction of its
// shorter dimension. A fraction of 0 returns the input unchanged, which
// downstream uses to skip guard geometry entirely.
func Expand(vb icon.ViewBox, paddingFraction float64) icon.ViewBox {
	if paddingFraction == 0 {
		return vb
	}
	pad := vb.Min() * paddingFraction
	return icon.ViewBox{
		X: vb.X - pad,
		Y: vb.Y - pad,
		W: vb.W + 2*pad,
		H: vb.H + 2*pad,
	}
}

// CornerRadius converts a corner-radius percentage into view-box units:
// percent of the expanded container's shorter dimension. 50 yields a fully
// rounded (circular/stadium) container.
func CornerRadius(vb icon.ViewBox, percent float64) float64 {
	return vb.Min() * percent / 100
}
