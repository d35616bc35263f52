package classify

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

type godotRecognizer struct {
	noFocus
}

func newGodotRecognizer() *godotRecognizer { return &godotRecognizer{} }

func (godotRecognizer) Kind() Kind    { return Godot }
func (godotRecognizer) Label() string { return "Godot" }
func (godotRecognizer) ArtifactFragments() []string {
	return []string{".godot"}
}

func (godotRecognizer) IsProject(_ string, entries []os.DirEntry) bool {
	return hasFile(entries, "project.godot")
}

// DisplayName reads the config/name key of the [application] section in
// project.godot, Godot's INI-flavored config file. No INI library is
// wired into this module, so this is a small permissive section/key scanner
// rather than a full parser — sufficient for the single key classification
// needs.
func (godotRecognizer) DisplayName(dir string) (string, bool) {
	f, err := os.Open(filepath.Join(dir, "project.godot"))
	if err != nil {
		return "", false
	}
	defer f.Close()

	section := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			continue
		}
		if section != "application" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(key) != "config/name" {
			continue
		}
		name := strings.TrimSpace(value)
		name = strings.Trim(name, `"`)
		if name == "" {
			return "", false
		}
		return name, true
	}
	return "", false
}
