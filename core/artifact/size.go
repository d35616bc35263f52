package artifact

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/fswalk"
)

// Paths returns the subset of kind's artifact fragments that actually exist
// beneath root, each joined onto root (absolute when root is absolute).
func Paths(reg *classify.Registry, root string, kind classify.Kind) []string {
	var out []string
	for _, frag := range reg.ArtifactFragments(kind) {
		p := filepath.Join(root, frag)
		if _, err := os.Lstat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// Size sums the size of every regular file reachable under path, never
// following symbolic links (opts.FollowSymlinks is not consulted) and, when
// opts.SameFileSystem is set,
// refusing to cross onto a device other than boundaryRoot's. Entries whose
// metadata cannot be read contribute zero bytes rather than aborting.
func Size(opts fswalk.Options, boundaryRoot, path string) uint64 {
	boundaryInfo, err := os.Lstat(boundaryRoot)
	if err != nil {
		return 0
	}

	var total uint64
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if opts.SameFileSystem {
				info, err := d.Info()
				if err == nil && !fswalk.SameDevice(boundaryInfo, info) {
					return filepath.SkipDir
				}
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += uint64(info.Size())
		return nil
	})
	return total
}

// TotalSize sums Size across every path in paths, all bounded by root.
func TotalSize(opts fswalk.Options, root string, paths []string) uint64 {
	var total uint64
	for _, p := range paths {
		total += Size(opts, root, p)
	}
	return total
}
