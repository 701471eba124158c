package catalog

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/iconclip/iconclip/pkg/errors"
	"github.com/iconclip/iconclip/pkg/icon"
)

// iconsDir is the directory under the pack root holding the SVG sources.
const iconsDir = "icons"

// Pack is a loaded icon pack: the manifest plus the raw icon sources.
type Pack struct {
	Manifest Manifest

	// raw maps icon name to the unmodified SVG source bytes.
	raw map[string][]byte

	mu     sync.Mutex
	parsed map[string]*icon.Icon
}

// Name returns the pack identifier.
func (p *Pack) Name() string { return p.Manifest.Name }

// Convention returns the pack's paint convention.
func (p *Pack) Convention() icon.Convention { return p.Manifest.ParsedConvention() }

// Icons returns the sorted icon names in the pack.
func (p *Pack) Icons() []string {
	names := make([]string, 0, len(p.raw))
	for name := range p.raw {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of icons in the pack.
func (p *Pack) Len() int { return len(p.raw) }

// Raw returns the unmodified SVG source bytes for an icon. The source
// bytes feed the artifact cache key, so they must never be normalized.
func (p *Pack) Raw(name string) ([]byte, error) {
	data, ok := p.raw[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeIconNotFound, "icon %q not found in pack %q", name, p.Name())
	}
	return data, nil
}

// Icon parses the named icon, memoizing the parsed form. The returned
// tree is shared; callers that mutate it must clone first (the renderer
// already does).
func (p *Pack) Icon(name string) (*icon.Icon, error) {
	data, err := p.Raw(name)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if ic, ok := p.parsed[name]; ok {
		return ic, nil
	}
	ic, err := icon.Parse(name, data)
	if err != nil {
		return nil, err
	}
	if p.parsed == nil {
		p.parsed = make(map[string]*icon.Icon)
	}
	p.parsed[name] = ic
	return ic, nil
}

// Catalog indexes packs by name.
type Catalog struct {
	packs map[string]*Pack
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{packs: make(map[string]*Pack)}
}

// AddFS loads one pack from a filesystem rooted at the pack directory
// (pack.toml at the root, sources under icons/). A pack with the same
// name replaces the previous one, so user packs can shadow builtins.
func (c *Catalog) AddFS(fsys fs.FS) error {
	manifestData, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPack, err, "pack has no %s", ManifestFile)
	}
	m, err := ParseManifest(manifestData)
	if err != nil {
		return err
	}

	entries, err := fs.ReadDir(fsys, iconsDir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPack, err, "pack %q has no %s directory", m.Name, iconsDir)
	}

	p := &Pack{Manifest: m, raw: make(map[string][]byte)}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".svg") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".svg")
		if err := errors.ValidateIconName(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPack, err, "pack %q: bad icon file name %q", m.Name, e.Name())
		}
		data, err := fs.ReadFile(fsys, path.Join(iconsDir, e.Name()))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPack, err, "pack %q: reading %s", m.Name, e.Name())
		}
		p.raw[name] = data
	}
	if len(p.raw) == 0 {
		return errors.New(errors.ErrCodeInvalidPack, "pack %q contains no icons", m.Name)
	}

	c.packs[m.Name] = p
	return nil
}

// AddDir loads every subdirectory of dir as a pack. Subdirectories
// without a pack.toml are skipped silently so the packs directory can
// hold unrelated files.
func (c *Catalog) AddDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "reading packs directory %s", dir)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub := os.DirFS(filepath.Join(dir, e.Name()))
		if _, err := fs.Stat(sub, ManifestFile); err != nil {
			continue
		}
		if err := c.AddFS(sub); err != nil {
			return err
		}
	}
	return nil
}

// Packs returns all packs sorted by name.
func (c *Catalog) Packs() []*Pack {
	names := make([]string, 0, len(c.packs))
	for name := range c.packs {
		names = append(names, name)
	}
	sort.Strings(names)
	packs := make([]*Pack, len(names))
	for i, name := range names {
		packs[i] = c.packs[name]
	}
	return packs
}

// Pack returns the named pack.
func (c *Catalog) Pack(name string) (*Pack, error) {
	p, ok := c.packs[name]
	if !ok {
		return nil, errors.New(errors.ErrCodePackNotFound, "pack %q not found", name)
	}
	return p, nil
}

// Icon resolves pack and icon name to a parsed icon and the pack's
// paint convention.
func (c *Catalog) Icon(pack, name string) (*icon.Icon, icon.Convention, error) {
	p, err := c.Pack(pack)
	if err != nil {
		return nil, icon.Unknown, err
	}
	ic, err := p.Icon(name)
	if err != nil {
		return nil, icon.Unknown, err
	}
	return ic, p.Convention(), nil
}

// Match is one search hit.
type Match struct {
	Pack string
	Icon string
}

// Search returns icons whose name contains the query substring, across
// all packs, sorted by pack then icon. An empty query matches everything.
func (c *Catalog) Search(query string) []Match {
	query = strings.ToLower(query)
	var out []Match
	for _, p := range c.Packs() {
		for _, name := range p.Icons() {
			if query == "" || strings.Contains(name, query) {
				out = append(out, Match{Pack: p.Name(), Icon: name})
			}
		}
	}
	return out
}
