package artifact

import (
	"os"

	"github.com/tbillington/kondo/core/classify"
)

// Clean recursively removes every existing artifact path beneath root for
// kind. Deletion is best-effort and not transactional: a failure removing
// one artifact path is reported to onError (if non-nil) and does not stop
// the remaining paths from being attempted.
func Clean(reg *classify.Registry, root string, kind classify.Kind, onError func(path string, err error)) {
	for _, p := range Paths(reg, root, kind) {
		if err := os.RemoveAll(p); err != nil && onError != nil {
			onError(p, err)
		}
	}
}
