package catalog

import (
	"io/fs"

	"github.com/iconclip/iconclip/pkg/catalog/builtin"
	"github.com/iconclip/iconclip/pkg/errors"
)

// Builtin returns a catalog preloaded with the embedded packs.
func Builtin() (*Catalog, error) {
	c := New()
	for _, name := range builtin.Packs {
		sub, err := fs.Sub(builtin.FS, name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "embedded pack %q missing", name)
		}
		if err := c.AddFS(sub); err != nil {
			return nil, err
		}
	}
	return c, nil
}
