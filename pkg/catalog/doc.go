// Package catalog loads and indexes icon packs.
//
// A pack is a directory (or any fs.FS) with a pack.toml manifest at its
// root and the icon sources under icons/:
//
//	pack.toml
//	icons/
//	  check.svg
//	  heart.svg
//
// The manifest declares the pack's name and its paint convention, which
// tells the colorizer whether glyphs are drawn with strokes or fills.
// Icon names are the file names without the .svg extension and must be
// lowercase kebab-case.
//
// Two packs ship embedded in the binary ([Builtin]): "outline"
// (stroke-based) and "solid" (fill-based). Additional packs load from
// disk via [Catalog.AddDir].
//
// Icons are parsed lazily on first access and the parsed form is
// memoized; listing a large pack never pays the parse cost.
package catalog
