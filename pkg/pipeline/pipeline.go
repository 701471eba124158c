// Package pipeline provides the core rendering pipeline for iconclip.
//
// This package implements the complete lookup → style → render → deliver
// flow used by the CLI, TUI, and HTTP API. Centralizing it keeps
// behavior identical across entry points: the same icon with the same
// style always yields the same bytes, whichever surface asked for them.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Lookup: resolve pack and icon name against the catalog
//  2. Render: assemble the styled SVG and optionally rasterize to PNG
//  3. Deliver: place the artifact on the clipboard
//
// Rendered artifacts are cached by a hash of the icon source plus the
// full style, so repeat requests skip the render stage entirely.
//
// # Usage
//
//	runner := pipeline.NewRunner(cat, fileCache, nil, clipboard.System{}, logger)
//	opts := pipeline.Options{
//	    Pack:    "outline",
//	    Icon:    "heart",
//	    Style:   render.DefaultStyle(),
//	    Formats: []string{"png"},
//	    Copy:    true,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"time"

	"github.com/iconclip/iconclip/pkg/cache"
	"github.com/iconclip/iconclip/pkg/errors"
	"github.com/iconclip/iconclip/pkg/icon"
	"github.com/iconclip/iconclip/pkg/render"
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// DefaultFormats is used when Options.Formats is empty.
var DefaultFormats = []string{FormatSVG}

// Options configures one pipeline execution.
type Options struct {
	// Pack is the icon pack name.
	Pack string

	// Icon is the icon name within the pack.
	Icon string

	// Style controls recoloring, padding, corners, background, and
	// raster size. Zero-value fields are filled with defaults and
	// out-of-range values are clamped, never rejected.
	Style render.Style

	// Formats lists the artifact formats to produce. Defaults to SVG.
	Formats []string

	// Copy places the first requested format on the clipboard.
	Copy bool

	// Refresh bypasses the artifact cache and re-renders.
	Refresh bool
}

// ValidateAndSetDefaults fills defaults and validates the options.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidatePackName(o.Pack); err != nil {
		return err
	}
	if err := errors.ValidateIconName(o.Icon); err != nil {
		return err
	}
	o.Style = o.Style.Clamped()
	if err := o.Style.Validate(); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	return ValidateFormats(o.Formats)
}

// ValidateFormats checks that every format is supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q (valid: svg, png)", f)
		}
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for one artifact format.
// The pack convention is part of the key because it changes how the
// colorizer rewrites paint attributes.
func (o *Options) ArtifactKeyOpts(format string, conv icon.Convention) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		Color:        o.Style.Color,
		Background:   o.Style.Background,
		Padding:      o.Style.Padding,
		CornerRadius: o.Style.CornerRadius,
		SizePx:       o.Style.SizePx,
		Convention:   conv.String(),
	}
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	// ArtifactHit is true when every requested format came from cache.
	ArtifactHit bool
}

// Stats captures per-stage timing.
type Stats struct {
	RenderTime time.Duration
	CopyTime   time.Duration
}

// Result holds pipeline outputs.
type Result struct {
	// Artifacts maps format to rendered bytes.
	Artifacts map[string][]byte

	// IconHash is the SHA-256 of the icon's source bytes.
	IconHash string

	// Copied names the format placed on the clipboard, empty when none.
	Copied string

	CacheInfo CacheInfo
	Stats     Stats
}
