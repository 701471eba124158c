package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/iconclip/iconclip/pkg/cache"
	"github.com/iconclip/iconclip/pkg/catalog"
	"github.com/iconclip/iconclip/pkg/clipboard"
	"github.com/iconclip/iconclip/pkg/errors"
	"github.com/iconclip/iconclip/pkg/render"
)

func newTestRunner(t *testing.T) (*Runner, *clipboard.Memory) {
	t.Helper()
	cat, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	clip := &clipboard.Memory{}
	logger := log.New(io.Discard)
	return NewRunner(cat, fc, nil, clip, logger), clip
}

func baseOpts() Options {
	return Options{
		Pack:  "outline",
		Icon:  "heart",
		Style: render.DefaultStyle(),
	}
}

func TestExecuteRendersSVG(t *testing.T) {
	r, _ := newTestRunner(t)
	defer r.Close()

	result, err := r.Execute(context.Background(), baseOpts())
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	svg := string(result.Artifacts[FormatSVG])
	if !strings.HasPrefix(svg, "<?xml") {
		t.Errorf("artifact does not look like an SVG document: %.40s", svg)
	}
	if result.IconHash == "" {
		t.Error("IconHash not populated")
	}
	if result.CacheInfo.ArtifactHit {
		t.Error("first render should not be a cache hit")
	}
}

func TestExecuteServesFromCache(t *testing.T) {
	r, _ := newTestRunner(t)
	defer r.Close()
	ctx := context.Background()
	opts := baseOpts()

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}

	if !second.CacheInfo.ArtifactHit {
		t.Error("second render should hit the artifact cache")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh forces a re-render.
	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("refresh Execute() error: %v", err)
	}
	if third.CacheInfo.ArtifactHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestExecuteStyleChangesCacheKey(t *testing.T) {
	r, _ := newTestRunner(t)
	defer r.Close()
	ctx := context.Background()

	if _, err := r.Execute(ctx, baseOpts()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	opts := baseOpts()
	opts.Style.Color = "#ff0000"
	result, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.CacheInfo.ArtifactHit {
		t.Error("different style must not hit the previous cache entry")
	}
	if !strings.Contains(string(result.Artifacts[FormatSVG]), "#ff0000") {
		t.Error("restyled artifact missing the requested color")
	}
}

func TestExecuteCopiesToClipboard(t *testing.T) {
	r, clip := newTestRunner(t)
	defer r.Close()
	ctx := context.Background()

	opts := baseOpts()
	opts.Copy = true
	result, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Copied != FormatSVG {
		t.Errorf("Copied = %q, want svg", result.Copied)
	}
	if kind, data := clip.Last(); kind != clipboard.KindText || len(data) == 0 {
		t.Errorf("clipboard = (%q, %d bytes), want text payload", kind, len(data))
	}

	opts.Formats = []string{FormatPNG}
	result, err = r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() png error: %v", err)
	}
	if result.Copied != FormatPNG {
		t.Errorf("Copied = %q, want png", result.Copied)
	}
	if kind, _ := clip.Last(); kind != clipboard.KindImage {
		t.Errorf("clipboard kind = %q, want image", kind)
	}
}

func TestExecuteValidation(t *testing.T) {
	r, _ := newTestRunner(t)
	defer r.Close()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Options)
		code   errors.Code
	}{
		{"bad pack name", func(o *Options) { o.Pack = "Not Valid" }, errors.ErrCodeInvalidPack},
		{"bad icon name", func(o *Options) { o.Icon = "../../etc" }, errors.ErrCodeInvalidRef},
		{"unknown pack", func(o *Options) { o.Pack = "nope" }, errors.ErrCodePackNotFound},
		{"unknown icon", func(o *Options) { o.Icon = "nope" }, errors.ErrCodeIconNotFound},
		{"bad format", func(o *Options) { o.Formats = []string{"pdf"} }, errors.ErrCodeInvalidFormat},
		{"bad color", func(o *Options) { o.Style.Color = "#zzz" }, errors.ErrCodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOpts()
			tt.mutate(&opts)
			_, err := r.Execute(ctx, opts)
			if errors.GetCode(err) != tt.code {
				t.Errorf("code = %v (%v), want %v", errors.GetCode(err), err, tt.code)
			}
		})
	}
}

func TestOptionsClamping(t *testing.T) {
	opts := baseOpts()
	opts.Style.Padding = 2.0
	opts.Style.CornerRadius = 200
	opts.Style.SizePx = 0

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.Style.Padding != render.MaxPadding {
		t.Errorf("padding = %v, want clamped to %v", opts.Style.Padding, render.MaxPadding)
	}
	if opts.Style.CornerRadius != render.MaxCornerRadius {
		t.Errorf("radius = %v, want clamped to %v", opts.Style.CornerRadius, render.MaxCornerRadius)
	}
	if opts.Style.SizePx != render.DefaultSizePx {
		t.Errorf("size = %v, want default %v", opts.Style.SizePx, render.DefaultSizePx)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("formats = %v, want default [svg]", opts.Formats)
	}
}
