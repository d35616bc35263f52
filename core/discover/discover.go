package discover

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/walk"
)

// ErrNoRoots is returned when Discover is called with an empty root set.
var ErrNoRoots = errors.New("discover: no roots given")

// Discover walks roots in parallel, classifying each visited directory
// against filter (or every known kind, when filter is nil), and returns a
// receive-only stream of classified projects. The call returns as soon as
// the worker pool has been spawned; the walk proceeds asynchronously.
//
// Canceling ctx is this module's equivalent of the original "drop the
// receiver to cancel" protocol: Go channels have no drop hook, so callers
// that want early termination must cancel ctx explicitly rather than simply
// abandoning the returned channel. The channel closes once every worker has
// observed either full drain or cancellation.
func Discover(ctx context.Context, roots []string, filter []classify.Kind, opts ...Option) (<-chan ClassifiedProject, error) {
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}

	cfg := defaultSettings()
	for _, o := range opts {
		o(&cfg)
	}

	walkResults := make(chan walk.Result, cfg.resultBuffer)
	out := make(chan ClassifiedProject, cfg.resultBuffer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(walkResults)
		walk.Run(gctx, walk.Config{
			Roots:      roots,
			Registry:   cfg.registry,
			Filter:     filter,
			Options:    cfg.options,
			Ignore:     cfg.ignore,
			NumWorkers: cfg.numWorkers,
			Results:    walkResults,
			Logger:     cfg.logger,
		})
		return nil
	})

	g.Go(func() error {
		defer close(out)
		for r := range walkResults {
			project := ClassifiedProject{
				Path:     r.Path,
				Kind:     r.Kind,
				registry: cfg.registry,
				opts:     cfg.options,
			}
			select {
			case out <- project:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	// The façade owns joining both goroutines; callers only ever observe
	// the result channel closing, never an error value (classification and
	// walk errors are swallowed per the error-handling design — see
	// core/walk and core/classify).
	go func() {
		_ = g.Wait()
	}()

	return out, nil
}
