// Package fswalk holds the small set of filesystem-traversal options shared
// by the parallel walker (core/walk) and the artifact accountant
// (core/artifact): whether to follow symlinks, whether to stay on the
// originating filesystem, and whether to skip hidden directories during
// generic traversal.
package fswalk

// Options configures how a directory subtree is traversed. The zero value is
// not valid on its own; use Default() to get the specification's defaults.
type Options struct {
	// FollowSymlinks, when true, allows the parallel walker to descend into
	// symlinked directories. The artifact accountant never follows symlinks,
	// whatever this is set to. Default: false.
	FollowSymlinks bool

	// SameFileSystem, when true, refuses to cross from the device of the
	// walk's root onto a different device (e.g. a different mounted
	// filesystem). Default: true.
	SameFileSystem bool

	// SkipHidden, when true, never enqueues directories whose final path
	// component begins with ".". Default: true. This applies only to
	// generic traversal; artifact-fragment matching (e.g. ".godot") is
	// independent of this flag, see core/classify.
	SkipHidden bool
}

// Default returns the specification's default options: no symlink
// following, stay on one filesystem, skip hidden directories.
func Default() Options {
	return Options{
		FollowSymlinks: false,
		SameFileSystem: true,
		SkipHidden:     true,
	}
}
