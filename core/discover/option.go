package discover

import (
	"log/slog"

	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/fswalk"
	"github.com/tbillington/kondo/core/walk"
)

type settings struct {
	registry     *classify.Registry
	options      fswalk.Options
	ignore       []string
	numWorkers   int
	resultBuffer int
	logger       *slog.Logger
}

func defaultSettings() settings {
	return settings{
		registry:     classify.NewRegistry(),
		options:      fswalk.Default(),
		numWorkers:   walk.DefaultNumWorkers(),
		resultBuffer: 64,
		logger:       slog.Default(),
	}
}

// Option configures a Discover run. The functional-options shape mirrors the
// teacher's plugin.HostOption pattern.
type Option func(*settings)

// WithRegistry overrides the classifier registry used for this run. Mostly
// useful for tests that want to exercise a subset of recognizers.
func WithRegistry(r *classify.Registry) Option {
	return func(s *settings) { s.registry = r }
}

// WithWalkerOptions overrides the default symlink/filesystem-boundary/
// hidden-directory options.
func WithWalkerOptions(o fswalk.Options) Option {
	return func(s *settings) { s.options = o }
}

// WithIgnore sets .kondoignore/exclude-style patterns pruned against each
// candidate directory's path relative to its owning root, before it is
// enqueued for further walking.
func WithIgnore(patterns []string) Option {
	return func(s *settings) { s.ignore = patterns }
}

// WithNumWorkers overrides the worker pool size. The zero value means "use
// the default" (host parallelism, floored at 4).
func WithNumWorkers(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.numWorkers = n
		}
	}
}

// WithResultBuffer sets the capacity of the channel returned by Discover. A
// capacity of 0 makes it unbuffered, turning a slow consumer directly into
// walker backpressure.
func WithResultBuffer(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.resultBuffer = n
		}
	}
}

// WithLogger sets the logger used for best-effort debug diagnostics. A nil
// logger disables diagnostic logging entirely.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}
