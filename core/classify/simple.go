package classify

import "os"

// exactManifestRecognizer matches directories containing a single
// well-known manifest file name, with no name/focus extraction. This covers
// the majority of the kind catalogue: Maven, SBT, Stack, Pixi, Composer,
// Pub, Elixir, Swift, Zig, Turborepo and Terraform all differ only in their
// signature file and artifact fragments.
type exactManifestRecognizer struct {
	noName
	noFocus
	kind      Kind
	label     string
	signature string
	fragments []string
}

func newExactManifestRecognizer(kind Kind, label, signature string, fragments []string) *exactManifestRecognizer {
	return &exactManifestRecognizer{kind: kind, label: label, signature: signature, fragments: fragments}
}

func (e *exactManifestRecognizer) Kind() Kind                 { return e.kind }
func (e *exactManifestRecognizer) Label() string              { return e.label }
func (e *exactManifestRecognizer) ArtifactFragments() []string { return e.fragments }

func (e *exactManifestRecognizer) IsProject(_ string, entries []os.DirEntry) bool {
	return hasFile(entries, e.signature)
}

// suffixRecognizer matches directories containing any regular file whose
// name ends in a given suffix (Python's ".py", Jupyter's ".ipynb", Unreal's
// ".uproject").
type suffixRecognizer struct {
	noName
	noFocus
	kind      Kind
	label     string
	suffix    string
	fragments []string
}

func newSuffixRecognizer(kind Kind, label, suffix string, fragments []string) *suffixRecognizer {
	return &suffixRecognizer{kind: kind, label: label, suffix: suffix, fragments: fragments}
}

func (s *suffixRecognizer) Kind() Kind                 { return s.kind }
func (s *suffixRecognizer) Label() string              { return s.label }
func (s *suffixRecognizer) ArtifactFragments() []string { return s.fragments }

func (s *suffixRecognizer) IsProject(_ string, entries []os.DirEntry) bool {
	return hasSuffix(entries, s.suffix)
}

// gradleRecognizer matches either build.gradle or its Kotlin DSL variant.
type gradleRecognizer struct {
	noName
	noFocus
}

func newGradleRecognizer() *gradleRecognizer { return &gradleRecognizer{} }

func (gradleRecognizer) Kind() Kind    { return Gradle }
func (gradleRecognizer) Label() string { return "Gradle" }
func (gradleRecognizer) ArtifactFragments() []string {
	return []string{"build", ".gradle"}
}

func (gradleRecognizer) IsProject(_ string, entries []os.DirEntry) bool {
	return hasFile(entries, "build.gradle") || hasFile(entries, "build.gradle.kts")
}

// hasFile reports whether entries contains a regular file with the exact
// given name.
func hasFile(entries []os.DirEntry, name string) bool {
	for _, e := range entries {
		if !e.IsDir() && e.Name() == name {
			return true
		}
	}
	return false
}

// hasSuffix reports whether entries contains any regular file whose name
// ends with suffix.
func hasSuffix(entries []os.DirEntry, suffix string) bool {
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return true
		}
	}
	return false
}
