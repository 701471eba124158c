package catalog

import (
	"github.com/BurntSushi/toml"

	"github.com/iconclip/iconclip/pkg/errors"
	"github.com/iconclip/iconclip/pkg/icon"
)

// ManifestFile is the manifest's file name at the pack root.
const ManifestFile = "pack.toml"

// Manifest describes an icon pack.
type Manifest struct {
	// Name is the pack identifier, lowercase kebab-case.
	Name string `toml:"name"`

	// Title is the human-readable pack name.
	Title string `toml:"title"`

	// Convention is the paint convention: "stroke" or "fill". Empty
	// means unknown and the colorizer falls back to conservative
	// recoloring.
	Convention string `toml:"convention"`

	// Version is the upstream pack version, informational only.
	Version string `toml:"version"`

	// License is the upstream license identifier.
	License string `toml:"license"`

	// Homepage links to the upstream project.
	Homepage string `toml:"homepage"`
}

// ParseManifest decodes and validates a pack.toml document.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeInvalidPack, err, "malformed pack manifest")
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Validate checks the manifest's required fields.
func (m Manifest) Validate() error {
	if err := errors.ValidatePackName(m.Name); err != nil {
		return err
	}
	if _, err := icon.ParseConvention(m.Convention); err != nil {
		return err
	}
	return nil
}

// ParsedConvention returns the manifest's convention as the typed enum.
// Call only after Validate.
func (m Manifest) ParsedConvention() icon.Convention {
	conv, _ := icon.ParseConvention(m.Convention)
	return conv
}
