// Package discover implements the discovery façade: given a set of root
// paths and an optional kind filter, it instantiates the classifier
// registry and the parallel walker and streams classified projects back to
// the caller.
package discover

import (
	"time"

	"github.com/tbillington/kondo/core/artifact"
	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/fswalk"
)

// ClassifiedProject is an immutable (path, kind) pair emitted by Discover,
// plus the accountant operations bound to the registry and walker options
// the run was configured with.
type ClassifiedProject struct {
	Path string
	Kind classify.Kind

	registry *classify.Registry
	opts     fswalk.Options
}

// Label returns the human-readable name of the project's kind, e.g.
// "Cargo".
func (p ClassifiedProject) Label() string {
	return p.registry.Label(p.Kind)
}

// DisplayName reads the project's own declared name from its manifest, when
// the kind supports name extraction and the manifest parses.
func (p ClassifiedProject) DisplayName() (string, bool) {
	return p.registry.DisplayName(p.Kind, p.Path)
}

// Focus reports a dominant framework for the project, when the kind
// supports that notion.
func (p ClassifiedProject) Focus() (string, bool) {
	return p.registry.Focus(p.Kind, p.Path)
}

// ArtifactPaths returns the subset of the kind's artifact fragments that
// exist beneath the project root.
func (p ClassifiedProject) ArtifactPaths() []string {
	return artifact.Paths(p.registry, p.Path, p.Kind)
}

// ArtifactSize returns the total reclaimable byte count across every
// existing artifact path.
func (p ClassifiedProject) ArtifactSize() uint64 {
	return artifact.TotalSize(p.opts, p.Path, p.ArtifactPaths())
}

// LastModified returns the project's last-modified instant, excluding
// artifact mtimes.
func (p ClassifiedProject) LastModified() (time.Time, error) {
	return artifact.LastModified(p.registry, p.opts, p.Path, p.Kind)
}

// SizeBreakdown returns a (name, bytes, is_artifact) entry for each direct
// child of the project root.
func (p ClassifiedProject) SizeBreakdown() ([]artifact.ChildEntry, error) {
	return artifact.SizeBreakdown(p.registry, p.opts, p.Path, p.Kind)
}

// Clean recursively removes every existing artifact path. Failures are
// reported through onError (if non-nil) and do not stop cleaning of the
// project's remaining artifact paths.
func (p ClassifiedProject) Clean(onError func(path string, err error)) {
	artifact.Clean(p.registry, p.Path, p.Kind, onError)
}
