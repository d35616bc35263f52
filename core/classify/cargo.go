package classify

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// cargoManifest is a permissive decode target for Cargo.toml: only the
// fields classification cares about are declared, everything else is
// ignored by toml.Decode.
type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Dependencies map[string]toml.Primitive `toml:"dependencies"`
	Workspace    struct {
		Dependencies map[string]toml.Primitive `toml:"dependencies"`
	} `toml:"workspace"`
}

type cargoRecognizer struct{}

func newCargoRecognizer() *cargoRecognizer { return &cargoRecognizer{} }

func (cargoRecognizer) Kind() Kind    { return Cargo }
func (cargoRecognizer) Label() string { return "Cargo" }
func (cargoRecognizer) ArtifactFragments() []string {
	return []string{"target", ".xwin-cache"}
}

func (cargoRecognizer) IsProject(_ string, entries []os.DirEntry) bool {
	return hasFile(entries, "Cargo.toml")
}

func (cargoRecognizer) DisplayName(dir string) (string, bool) {
	m, ok := readCargoManifest(dir)
	if !ok || m.Package.Name == "" {
		return "", false
	}
	return m.Package.Name, true
}

// Focus reports "Bevy" when the manifest depends on the bevy crate, at
// either the package or workspace level.
func (cargoRecognizer) Focus(dir string) (string, bool) {
	m, ok := readCargoManifest(dir)
	if !ok {
		return "", false
	}
	if _, found := m.Dependencies["bevy"]; found {
		return "Bevy", true
	}
	if _, found := m.Workspace.Dependencies["bevy"]; found {
		return "Bevy", true
	}
	return "", false
}

func readCargoManifest(dir string) (cargoManifest, bool) {
	var m cargoManifest
	data, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	if err != nil {
		return m, false
	}
	if _, err := toml.Decode(string(data), &m); err != nil {
		return m, false
	}
	return m, true
}
