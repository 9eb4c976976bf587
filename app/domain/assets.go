package domain

import "fmt"

// AssetRef is one preloadable asset (font, image pack) named by the
// shell's asset manifest.
type AssetRef struct {
	Name     string `yaml:"name" json:"name"`
	URL      string `yaml:"url" json:"url"`
	Checksum string `yaml:"checksum,omitempty" json:"checksum,omitempty"`
}

// AssetManifest lists the assets the shell preloads during startup.
type AssetManifest struct {
	Version string     `yaml:"version" json:"version"`
	Fonts   []AssetRef `yaml:"fonts" json:"fonts"`
	Images  []AssetRef `yaml:"images" json:"images"`
}

// Validate rejects manifests with unnamed or unaddressable entries.
func (m *AssetManifest) Validate() error {
	if m.Version == "" {
		return fmt.Errorf("asset manifest version is required")
	}
	for _, ref := range append(append([]AssetRef{}, m.Fonts...), m.Images...) {
		if ref.Name == "" {
			return fmt.Errorf("asset entry without a name")
		}
		if ref.URL == "" {
			return fmt.Errorf("asset %q has no url", ref.Name)
		}
	}
	return nil
}

// Refs returns every asset reference in the manifest.
func (m *AssetManifest) Refs() []AssetRef {
	refs := make([]AssetRef, 0, len(m.Fonts)+len(m.Images))
	refs = append(refs, m.Fonts...)
	refs = append(refs, m.Images...)
	return refs
}
