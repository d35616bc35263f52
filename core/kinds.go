package core

import (
	"fmt"

	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/fswalk"
)

// ParseKind resolves a CLI/config kind string (e.g. "cargo") against the
// registry's known kinds, case-sensitively — kind identifiers are
// lowercase by convention (see classify.Kind).
func ParseKind(reg *classify.Registry, s string) (classify.Kind, error) {
	for _, k := range reg.Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown project kind %q", s)
}

// ParseKinds resolves a slice of kind strings, returning an error naming the
// first unrecognized one. An empty input returns (nil, nil), meaning "no
// filter".
func ParseKinds(reg *classify.Registry, ss []string) ([]classify.Kind, error) {
	if len(ss) == 0 {
		return nil, nil
	}
	kinds := make([]classify.Kind, 0, len(ss))
	for _, s := range ss {
		k, err := ParseKind(reg, s)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// ApplyWalkerSettings overlays the non-nil fields of ws onto base, returning
// the merged options.
func ApplyWalkerSettings(base fswalk.Options, ws WalkerSettings) fswalk.Options {
	if ws.FollowSymlinks != nil {
		base.FollowSymlinks = *ws.FollowSymlinks
	}
	if ws.SameFileSystem != nil {
		base.SameFileSystem = *ws.SameFileSystem
	}
	if ws.SkipHidden != nil {
		base.SkipHidden = *ws.SkipHidden
	}
	return base
}
