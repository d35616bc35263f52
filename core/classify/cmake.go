package classify

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

type cmakeRecognizer struct {
	noFocus
}

func newCMakeRecognizer() *cmakeRecognizer { return &cmakeRecognizer{} }

func (cmakeRecognizer) Kind() Kind    { return CMake }
func (cmakeRecognizer) Label() string { return "CMake" }
func (cmakeRecognizer) ArtifactFragments() []string {
	return []string{"build", "cmake-build-debug", "cmake-build-release"}
}

func (cmakeRecognizer) IsProject(_ string, entries []os.DirEntry) bool {
	return hasFile(entries, "CMakeLists.txt")
}

// DisplayName scans CMakeLists.txt for a project(<name> ...) command. No
// CMake-parsing library is wired into this module, so this stands in for a
// full parser: it finds the first "project(" occurrence and takes the first
// whitespace-delimited token inside the parens as the name.
func (cmakeRecognizer) DisplayName(dir string) (string, bool) {
	f, err := os.Open(filepath.Join(dir, "CMakeLists.txt"))
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		idx := strings.Index(strings.ToLower(line), "project(")
		if idx == -1 {
			continue
		}
		rest := strings.TrimLeft(line[idx+len("project("):], " \t")
		end := strings.IndexAny(rest, ") \t")
		if end == -1 {
			end = len(rest)
		}
		name := strings.TrimSpace(rest[:end])
		if name == "" {
			return "", false
		}
		return name, true
	}
	return "", false
}
