package classify

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// packageManifest is the subset of package.json classification needs. The
// Unity field is populated by Unity's npm-package workflow; a non-empty
// value there means the manifest belongs to a Unity package, not a Node
// project.
type packageManifest struct {
	Name  string `json:"name"`
	Unity string `json:"unity"`
}

type nodeRecognizer struct {
	noFocus
}

func newNodeRecognizer() *nodeRecognizer { return &nodeRecognizer{} }

func (nodeRecognizer) Kind() Kind    { return Node }
func (nodeRecognizer) Label() string { return "Node" }
func (nodeRecognizer) ArtifactFragments() []string {
	return []string{"node_modules", ".angular"}
}

func (nodeRecognizer) IsProject(dir string, entries []os.DirEntry) bool {
	if !hasFile(entries, "package.json") {
		return false
	}
	m, ok := readPackageManifest(dir)
	if !ok {
		return true // missing/unparseable unity field falls through to Node
	}
	return m.Unity == ""
}

func (nodeRecognizer) DisplayName(dir string) (string, bool) {
	m, ok := readPackageManifest(dir)
	if !ok || m.Name == "" {
		return "", false
	}
	return m.Name, true
}

func readPackageManifest(dir string) (packageManifest, bool) {
	var m packageManifest
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return m, false
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, false
	}
	return m, true
}
