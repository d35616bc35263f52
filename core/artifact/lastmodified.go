package artifact

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/fswalk"
)

// LastModified returns the maximum of root's own modification time and the
// modification times of every file reachable from root, excluding anything
// that sits under one of kind's existing artifact paths. Artifact mtimes are
// noise — they reflect the last build, not the last edit — so they are
// excluded regardless of the generic hidden-directory or filesystem-boundary
// rules a kind's artifact fragment might otherwise be subject to.
func LastModified(reg *classify.Registry, opts fswalk.Options, root string, kind classify.Kind) (time.Time, error) {
	rootInfo, err := os.Lstat(root)
	if err != nil {
		return time.Time{}, err
	}

	exclude := Paths(reg, root, kind)
	latest := rootInfo.ModTime()

	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if p != root && underAny(p, exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if d.IsDir() && p != root && opts.SameFileSystem && !fswalk.SameDevice(rootInfo, info) {
			return filepath.SkipDir
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
		return nil
	})

	return latest, nil
}

func underAny(p string, paths []string) bool {
	for _, ex := range paths {
		if p == ex || strings.HasPrefix(p, ex+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
