package classify

import "os"

// Recognizer is the per-kind contract described in the discovery spec: given
// a directory's entries, decide whether it is a project root, report its
// artifact fragments, and optionally extract a display name or framework
// focus from the project's manifest. A Recognizer must never block on
// anything but local filesystem reads and must never panic; manifest read
// or parse failures degrade to "no match" / "no name", never an error.
type Recognizer interface {
	// Kind returns the project kind this recognizer matches.
	Kind() Kind

	// Label is the human-readable name of the kind, e.g. "Cargo".
	Label() string

	// IsProject reports whether dir, whose direct entries are given, is a
	// project root of this kind. Implementations only consult entries
	// (name, IsDir) and, where necessary, read a single small manifest file
	// from dir.
	IsProject(dir string, entries []os.DirEntry) bool

	// ArtifactFragments returns the fixed, ordered set of relative subpaths
	// that make up this kind's reclaimable build output.
	ArtifactFragments() []string

	// DisplayName attempts to read the project's own declared name from its
	// manifest. The second return value is false when no manifest exists,
	// it fails to parse, or the name field is absent.
	DisplayName(dir string) (string, bool)

	// Focus reports a dominant framework or variant for the project, when
	// the kind supports that notion (currently only Cargo/Bevy). Returns
	// false when unsupported or undetermined.
	Focus(dir string) (string, bool)
}

// noFocus is embedded by recognizers that have no notion of "focus".
type noFocus struct{}

func (noFocus) Focus(string) (string, bool) { return "", false }

// noName is embedded by recognizers with no display-name extraction.
type noName struct{}

func (noName) DisplayName(string) (string, bool) { return "", false }

// Registry holds the fixed catalogue of recognizers and applies the
// cross-recognizer disambiguation policy (Unity/Godot win over Dotnet) when
// classifying a directory.
type Registry struct {
	recognizers []Recognizer
	byKind      map[Kind]Recognizer
}

// NewRegistry builds the default registry containing every built-in
// recognizer. Recognizer order matches the kind catalogue in the
// specification and determines the order in which matched kinds are
// returned from Classify.
func NewRegistry() *Registry {
	r := &Registry{byKind: make(map[Kind]Recognizer)}
	for _, rec := range []Recognizer{
		newCargoRecognizer(),
		newNodeRecognizer(),
		newUnityRecognizer(),
		newExactManifestRecognizer(Maven, "Maven", "pom.xml", []string{"target"}),
		newExactManifestRecognizer(SBT, "SBT", "build.sbt", []string{"target", "project/target"}),
		newGradleRecognizer(),
		newCMakeRecognizer(),
		newExactManifestRecognizer(Stack, "Stack", "stack.yaml", []string{".stack-work"}),
		newSuffixRecognizer(Python, "Python", ".py", []string{
			"__pycache__", "__pypackages__", ".venv", ".mypy_cache", ".nox", ".pytest_cache", ".ruff_cache", ".tox",
		}),
		newSuffixRecognizer(Jupyter, "Jupyter", ".ipynb", []string{".ipynb_checkpoints"}),
		newExactManifestRecognizer(Pixi, "Pixi", "pixi.toml", []string{".pixi"}),
		newExactManifestRecognizer(Composer, "Composer", "composer.json", []string{"vendor"}),
		newExactManifestRecognizer(Pub, "Pub", "pubspec.yaml", []string{
			"build", ".dart_tool", "linux/flutter/ephemeral", "windows/flutter/ephemeral",
		}),
		newExactManifestRecognizer(Elixir, "Elixir", "mix.exs", []string{
			"_build", ".elixir-tools", ".elixir_ls", ".lexical",
		}),
		newExactManifestRecognizer(Swift, "Swift", "Package.swift", []string{".build", ".swiftpm"}),
		newExactManifestRecognizer(Zig, "Zig", "build.zig", []string{"zig-cache"}),
		newGodotRecognizer(),
		newSuffixRecognizer(Unreal, "Unreal", ".uproject", []string{
			"Binaries", "Build", "Saved", "DerivedDataCache", "Intermediate",
		}),
		newDotnetRecognizer(),
		newExactManifestRecognizer(Turborepo, "Turborepo", "turbo.json", []string{".turbo"}),
		newExactManifestRecognizer(Terraform, "Terraform", ".terraform.lock.hcl", []string{".terraform"}),
	} {
		r.recognizers = append(r.recognizers, rec)
		r.byKind[rec.Kind()] = rec
	}
	return r
}

// Kinds returns every kind known to the registry, in catalogue order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, len(r.recognizers))
	for i, rec := range r.recognizers {
		kinds[i] = rec.Kind()
	}
	return kinds
}

// Classify evaluates dir against every recognizer in filter (or every
// registered recognizer when filter is nil), and returns the kinds that
// matched, in catalogue order, with the Dotnet-suppression disambiguation
// applied: a directory that matches both Dotnet and Unity, or both Dotnet
// and Godot, is reported only as the more specific kind.
func (r *Registry) Classify(dir string, entries []os.DirEntry, filter []Kind) []Kind {
	allowed := r.filterSet(filter)

	matched := make(map[Kind]bool)
	var ordered []Kind
	for _, rec := range r.recognizers {
		if allowed != nil && !allowed[rec.Kind()] {
			continue
		}
		if rec.IsProject(dir, entries) {
			matched[rec.Kind()] = true
			ordered = append(ordered, rec.Kind())
		}
	}

	if matched[Dotnet] && (matched[Unity] || matched[Godot]) {
		ordered = remove(ordered, Dotnet)
	}

	return ordered
}

func (r *Registry) filterSet(filter []Kind) map[Kind]bool {
	if filter == nil {
		return nil
	}
	set := make(map[Kind]bool, len(filter))
	for _, k := range filter {
		set[k] = true
	}
	return set
}

func remove(kinds []Kind, drop Kind) []Kind {
	out := kinds[:0]
	for _, k := range kinds {
		if k != drop {
			out = append(out, k)
		}
	}
	return out
}

// Label returns the human-readable label for kind, or the kind's raw string
// if it is not registered (defensive; should not happen for a Kind obtained
// from this registry).
func (r *Registry) Label(kind Kind) string {
	if rec, ok := r.byKind[kind]; ok {
		return rec.Label()
	}
	return kind.String()
}

// ArtifactFragments returns kind's artifact fragments, or nil if kind is not
// registered.
func (r *Registry) ArtifactFragments(kind Kind) []string {
	if rec, ok := r.byKind[kind]; ok {
		return rec.ArtifactFragments()
	}
	return nil
}

// IsArtifactChild reports whether childName — a single path segment, the
// immediate child of a classified project root — is one of kind's artifact
// fragments. Only the leading segment of each fragment is compared, so a
// nested fragment such as "project/target" is matched against a child named
// "project".
func (r *Registry) IsArtifactChild(kind Kind, childName string) bool {
	for _, frag := range r.ArtifactFragments(kind) {
		if leadingSegment(frag) == childName {
			return true
		}
	}
	return false
}

// DisplayName delegates to kind's recognizer.
func (r *Registry) DisplayName(kind Kind, dir string) (string, bool) {
	if rec, ok := r.byKind[kind]; ok {
		return rec.DisplayName(dir)
	}
	return "", false
}

// Focus delegates to kind's recognizer.
func (r *Registry) Focus(kind Kind, dir string) (string, bool) {
	if rec, ok := r.byKind[kind]; ok {
		return rec.Focus(dir)
	}
	return "", false
}

func leadingSegment(fragment string) string {
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == '/' {
			return fragment[:i]
		}
	}
	return fragment
}
