package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iconclip/iconclip/pkg/cache"
	"github.com/iconclip/iconclip/pkg/catalog"
	"github.com/iconclip/iconclip/pkg/clipboard"
	"github.com/iconclip/iconclip/pkg/errors"
	"github.com/iconclip/iconclip/pkg/observability"
	"github.com/iconclip/iconclip/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
// CLI, TUI, and API all use this to avoid duplicating caching logic.
//
// The Runner is stateless except for its collaborators - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Catalog   *catalog.Catalog
	Cache     cache.Cache
	Keyer     cache.Keyer
	Clipboard clipboard.Writer
	Logger    *log.Logger
}

// NewRunner creates a runner over the given catalog.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
// If clip is nil, the system clipboard is used.
func NewRunner(cat *catalog.Catalog, c cache.Cache, keyer cache.Keyer, clip clipboard.Writer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if clip == nil {
		clip = clipboard.System{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Catalog:   cat,
		Cache:     c,
		Keyer:     keyer,
		Clipboard: clip,
		Logger:    logger,
	}
}

// Execute runs the complete lookup → render → deliver pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result, err := r.RenderArtifacts(ctx, opts)
	if err != nil {
		return nil, err
	}

	if opts.Copy {
		ref := opts.Pack + "/" + opts.Icon
		format := opts.Formats[0]
		copyStart := time.Now()
		observability.Pipeline().OnCopyStart(ctx, ref, format)
		err := r.copy(format, result.Artifacts[format])
		observability.Pipeline().OnCopyComplete(ctx, ref, format, time.Since(copyStart), err)
		if err != nil {
			return nil, err
		}
		result.Copied = format
		result.Stats.CopyTime = time.Since(copyStart)

		r.Logger.Info("copied to clipboard",
			"icon", opts.Pack+"/"+opts.Icon,
			"format", format,
			"duration", result.Stats.CopyTime)
	}

	return result, nil
}

// RenderArtifacts produces every requested format, serving from the
// artifact cache when possible.
func (r *Runner) RenderArtifacts(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	pack, err := r.Catalog.Pack(opts.Pack)
	if err != nil {
		return nil, err
	}
	raw, err := pack.Raw(opts.Icon)
	if err != nil {
		return nil, err
	}
	conv := pack.Convention()

	result := &Result{
		Artifacts: make(map[string][]byte),
		IconHash:  cache.Hash(raw),
	}

	// Try to serve every format from cache.
	if !opts.Refresh {
		allCached := true
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(result.IconHash, opts.ArtifactKeyOpts(format, conv))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				result.Artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached {
			result.CacheInfo.ArtifactHit = true
			observability.Cache().OnCacheHit(ctx, "artifact")
			r.Logger.Debug("artifact cache hit",
				"icon", opts.Pack+"/"+opts.Icon,
				"formats", opts.Formats)
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	ic, err := pack.Icon(opts.Icon)
	if err != nil {
		return nil, err
	}

	ref := opts.Pack + "/" + opts.Icon
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, ref, opts.Formats)
	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatSVG:
			if data = sink.RenderSVG(ic, opts.Style, conv); data == nil {
				err = errors.New(errors.ErrCodeMalformedIcon, "icon %q has no vector content", opts.Icon)
			}
		case FormatPNG:
			data, err = sink.RenderPNG(ic, opts.Style, conv)
		}
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, ref, opts.Formats, time.Since(renderStart), err)
			return nil, err
		}
		result.Artifacts[format] = data

		key := r.Keyer.ArtifactKey(result.IconHash, opts.ArtifactKeyOpts(format, conv))
		if r.Cache.Set(ctx, key, data, cache.TTLArtifact) == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, ref, opts.Formats, result.Stats.RenderTime, nil)

	r.Logger.Info("rendered artifacts",
		"icon", opts.Pack+"/"+opts.Icon,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) copy(format string, data []byte) error {
	switch format {
	case FormatPNG:
		return r.Clipboard.WritePNG(data)
	default:
		return r.Clipboard.WriteSVG(data)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
