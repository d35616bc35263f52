package artifact

import (
	"os"
	"path/filepath"

	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/fswalk"
)

// SizeBreakdown reports, for each direct child of root, its name, recursive
// byte size, and whether it is one of kind's artifact fragments. Interactive
// front ends use this to show where a project's space is going.
func SizeBreakdown(reg *classify.Registry, opts fswalk.Options, root string, kind classify.Kind) ([]ChildEntry, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	out := make([]ChildEntry, 0, len(entries))
	for _, e := range entries {
		childPath := filepath.Join(root, e.Name())
		out = append(out, ChildEntry{
			Name:       e.Name(),
			Bytes:      Size(opts, root, childPath),
			IsArtifact: reg.IsArtifactChild(kind, e.Name()),
		})
	}
	return out, nil
}

// Compute assembles a full Report for (root, kind): artifact byte total,
// last-modified time, and the per-child size breakdown.
func Compute(reg *classify.Registry, opts fswalk.Options, root string, kind classify.Kind) (Report, error) {
	paths := Paths(reg, root, kind)
	bytes := TotalSize(opts, root, paths)

	lastMod, err := LastModified(reg, opts, root, kind)
	if err != nil {
		return Report{}, err
	}

	children, err := SizeBreakdown(reg, opts, root, kind)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Root:          root,
		Kind:          kind,
		ArtifactBytes: bytes,
		LastModified:  lastMod,
		Children:      children,
	}, nil
}
