package classify

import "os"

// dotnetRecognizer matches a .csproj or .fsproj file. Disambiguation against
// Godot and Unity happens at the registry level (Registry.Classify), not
// here: this recognizer reports a match whenever the suffix is present, and
// the registry drops Dotnet from the result when Unity or Godot also
// matched the same directory.
type dotnetRecognizer struct {
	noName
	noFocus
}

func newDotnetRecognizer() *dotnetRecognizer { return &dotnetRecognizer{} }

func (dotnetRecognizer) Kind() Kind    { return Dotnet }
func (dotnetRecognizer) Label() string { return "Dotnet" }
func (dotnetRecognizer) ArtifactFragments() []string {
	return []string{"bin", "obj"}
}

func (dotnetRecognizer) IsProject(_ string, entries []os.DirEntry) bool {
	return hasSuffix(entries, ".csproj") || hasSuffix(entries, ".fsproj")
}
