// Package artifact computes reclaimable-space reports for classified
// projects and performs best-effort deletion of their build artifacts.
package artifact

import (
	"time"

	"github.com/tbillington/kondo/core/classify"
)

// ChildEntry describes one direct child of a project root: its name, the
// total byte size reachable under it, and whether that name is one of the
// project kind's artifact fragments.
type ChildEntry struct {
	Name       string
	Bytes      uint64
	IsArtifact bool
}

// Report is the accountant's output for a single classified project.
type Report struct {
	Root          string
	Kind          classify.Kind
	ArtifactBytes uint64
	LastModified  time.Time
	Children      []ChildEntry
}
