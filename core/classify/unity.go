package classify

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

type unityRecognizer struct {
	noFocus
}

func newUnityRecognizer() *unityRecognizer { return &unityRecognizer{} }

func (unityRecognizer) Kind() Kind    { return Unity }
func (unityRecognizer) Label() string { return "Unity" }
func (unityRecognizer) ArtifactFragments() []string {
	return []string{"Library", "Temp", "Obj", "Logs", "MemoryCaptures", "Build", "Builds"}
}

func (unityRecognizer) IsProject(_ string, entries []os.DirEntry) bool {
	return hasFile(entries, "Assembly-CSharp.csproj")
}

// DisplayName reads ProjectSettings/ProjectSettings.asset. The file declares
// itself %YAML 1.1 but carries Unity-specific tag directives (!u!ClassID)
// that a standards-compliant YAML parser rejects, so this is a permissive
// line scan for "productName: <value>" rather than a full decode.
func (unityRecognizer) DisplayName(dir string) (string, bool) {
	f, err := os.Open(filepath.Join(dir, "ProjectSettings", "ProjectSettings.asset"))
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rest, ok := strings.CutPrefix(line, "productName:")
		if !ok {
			continue
		}
		name := strings.TrimSpace(rest)
		name = strings.Trim(name, `"`)
		if name == "" {
			return "", false
		}
		return name, true
	}
	return "", false
}
