// Package pkg provides the core libraries for iconclip icon rendering.
//
// # Overview
//
// Iconclip turns icons from SVG packs into styled, ready-to-paste artifacts:
// recolored and padded SVG documents and rasterized PNGs, delivered to the
// system clipboard or to files. The pkg directory is organized into five
// main areas:
//
//  1. [icon] / [catalog] - Icon parsing and pack management
//  2. [render] - Styling, document assembly, and rasterization
//  3. [pipeline] - Orchestration (lookup → render → deliver)
//  4. [cache] / [clipboard] - Infrastructure (artifact cache, delivery)
//  5. [server] - HTTP surface over the pipeline
//
// # Architecture
//
// The typical data flow through iconclip:
//
//	Icon pack (embedded or on disk)
//	         ↓
//	    [catalog] package (lookup + convention detection)
//	         ↓
//	    [render/layout] + [render/colorize] (geometry + paint)
//	         ↓
//	    [render/sink] package (SVG assembly, PNG rasterization)
//	         ↓
//	    [clipboard] / files / HTTP response
//
// # Quick Start
//
// Render an icon and copy it to the clipboard:
//
//	import (
//	    "context"
//	    "github.com/iconclip/iconclip/pkg/catalog"
//	    "github.com/iconclip/iconclip/pkg/pipeline"
//	    "github.com/iconclip/iconclip/pkg/render"
//	)
//
//	// 1. Load the built-in packs
//	cat, _ := catalog.Builtin()
//
//	// 2. Build a runner (nil dependencies get working defaults)
//	runner := pipeline.NewRunner(cat, nil, nil, nil, nil)
//	defer runner.Close()
//
//	// 3. Render and copy
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Pack:    "outline",
//	    Icon:    "heart",
//	    Style:   render.Style{Color: "#e11d48", Padding: 0.1},
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	    Copy:    true,
//	})
//	_ = result.Artifacts[pipeline.FormatPNG]
//
// # Main Packages
//
// ## Domain Logic
//
// [icon] - SVG icon parsing and normalization. Parses an icon into an
// element tree, extracts its viewBox, and classifies its paint convention
// (stroke-based vs fill-based).
//
// [catalog] - Icon pack management. Loads packs from embedded assets or
// directories, validates manifests, and resolves pack/icon references.
// Parsed icons are memoized per pack.
//
// [render] - Styling and conversion. [render.Style] carries color,
// background, padding, corner radius, and output size; layout computes the
// padded viewBox and clip geometry; colorize rewrites paint attributes per
// the pack's convention.
//
// [render/sink] - Output formats. RenderSVG assembles the final SVG
// document (background, guard rect, recolored shapes); RenderPNG
// rasterizes it at the requested pixel size.
//
// ## Infrastructure
//
// [pipeline] - Complete rendering pipeline (lookup → render → deliver)
// used by the CLI and the HTTP server. Ensures consistent behavior across
// all entry points, including caching and clipboard delivery.
//
// [cache] - Content-addressed artifact cache keyed by icon source hash
// plus style options. FileCache for the CLI (filesystem), RedisCache for
// shared deployments, NullCache for testing and --no-cache.
//
// [clipboard] - Clipboard delivery. System writes PNG bytes as an image
// payload and SVG bytes as text; Memory captures payloads for tests.
//
// [server] - HTTP handlers exposing pack listing, icon search, and
// rendering over chi, with request IDs and structured request logging.
//
// [observability] - Hook interfaces for render, copy, and cache events.
//
// [errors] - Structured errors with stable codes and user-facing messages.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Common Workflows
//
// Load packs from a directory alongside the built-ins:
//
//	cat, _ := catalog.Builtin()
//	_ = cat.AddDir("/path/to/packs")
//
// Render to bytes without the pipeline:
//
//	ic, conv, _ := cat.Icon("outline", "heart")
//	svg := sink.RenderSVG(ic, render.Style{Color: "#e11d48"}, conv)
//	png, _ := sink.RenderPNG(ic, render.Style{SizePx: 256}, conv)
//
// Share the cache between server instances:
//
//	store, _ := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: "localhost:6379"})
//	runner := pipeline.NewRunner(cat, store, nil, nil, logger)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/render/...     # Specific package
//	go test -run Example         # Examples only
//
// [icon]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/icon
// [catalog]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/catalog
// [render]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/render
// [render.Style]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/render#Style
// [render/layout]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/render/layout
// [render/colorize]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/render/colorize
// [render/sink]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/cache
// [clipboard]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/clipboard
// [server]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/server
// [observability]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/observability
// [errors]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/iconclip/iconclip/pkg/buildinfo
package pkg
