// Package walk implements the parallel, work-stealing directory walker at
// the heart of discovery: a global injector queue, per-worker local deques
// with mutual stealing, and poll-based quiescence detection.
package walk

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tbillington/kondo/core"
	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/fswalk"
)

// supervisorTick is the polling interval the quiescence-detection
// supervisor uses; the specification names ~10ms as an implementation
// parameter, not a contract.
const supervisorTick = 10 * time.Millisecond

// minWorkers is the floor applied to the host's available parallelism.
const minWorkers = 4

// Result is a single (path, kind) classification emitted during a walk.
type Result struct {
	Path string
	Kind classify.Kind
}

// Config configures a single walk run.
type Config struct {
	Roots      []string
	Registry   *classify.Registry
	Filter     []classify.Kind
	Options    fswalk.Options
	// Ignore holds .kondoignore/exclude-style patterns matched against each
	// candidate child's path relative to its owning seed root. A matching
	// child is pruned before it is ever enqueued.
	Ignore     []string
	NumWorkers int
	Results    chan<- Result
	Logger     *slog.Logger
}

// DefaultNumWorkers returns the host's available parallelism, floored at 4,
// the specification's default worker-pool size.
func DefaultNumWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < minWorkers {
		return minWorkers
	}
	return n
}

type workerState struct {
	local  *deque
	active atomic.Bool
	parker *parker
}

// anchor associates a seed root with the device it lives on, so the walker
// can refuse to cross filesystem boundaries per-subtree rather than
// globally.
type anchor struct {
	path string
	info os.FileInfo
}

// Run seeds the injector with cfg.Roots and drives the worker pool to
// completion. It blocks until every worker has exited: either because the
// tree was fully drained (quiescence) or because ctx was canceled, the
// walker's equivalent of the consumer dropping its receiver. Run never
// closes cfg.Results; the caller owns that channel's lifecycle.
func Run(ctx context.Context, cfg Config) {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = DefaultNumWorkers()
	}

	injector := &deque{}
	anchors := make([]anchor, 0, len(cfg.Roots))
	for _, root := range cfg.Roots {
		info, err := os.Lstat(root)
		if err != nil {
			logDebug(cfg.Logger, "root unreadable", root, err)
			continue
		}
		anchors = append(anchors, anchor{path: root, info: info})
		injector.pushBack(root)
	}

	states := make([]*workerState, cfg.NumWorkers)
	locals := make([]*deque, cfg.NumWorkers)
	for i := range states {
		locals[i] = &deque{}
		states[i] = &workerState{local: locals[i], parker: newParker()}
	}

	var finished atomic.Bool

	var wg sync.WaitGroup
	wg.Add(cfg.NumWorkers + 1)

	go func() {
		defer wg.Done()
		runSupervisor(ctx, &finished, states)
	}()

	for i := 0; i < cfg.NumWorkers; i++ {
		peers := make([]*deque, 0, cfg.NumWorkers-1)
		for j, l := range locals {
			if j != i {
				peers = append(peers, l)
			}
		}
		go func(state *workerState, peers []*deque) {
			defer wg.Done()
			runWorker(ctx, state, injector, peers, anchors, &finished, cfg)
		}(states[i], peers)
	}

	wg.Wait()
}

func runSupervisor(ctx context.Context, finished *atomic.Bool, states []*workerState) {
	ticker := time.NewTicker(supervisorTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			finished.Store(true)
			unparkAll(states)
			return
		case <-ticker.C:
			if anyActive(states) {
				unparkAll(states)
				continue
			}
			finished.Store(true)
			unparkAll(states)
			return
		}
	}
}

func anyActive(states []*workerState) bool {
	for _, s := range states {
		if s.active.Load() {
			return true
		}
	}
	return false
}

func unparkAll(states []*workerState) {
	for _, s := range states {
		s.parker.unpark()
	}
}

func runWorker(ctx context.Context, state *workerState, injector *deque, peers []*deque, anchors []anchor, finished *atomic.Bool, cfg Config) {
	for {
		if finished.Load() {
			return
		}

		path, ok := acquire(state.local, injector, peers)
		if !ok {
			state.active.Store(false)
			state.parker.park(ctx)
			if finished.Load() {
				return
			}
			state.active.Store(true)
			continue
		}

		state.active.Store(true)
		if !processPath(ctx, path, state.local, anchors, finished, cfg) {
			return
		}
	}
}

// acquire implements the per-worker task-acquisition order: local pop, else
// steal a batch from the injector, else steal from each peer in turn.
func acquire(local, injector *deque, peers []*deque) (string, bool) {
	if p, ok := local.popFront(); ok {
		return p, true
	}
	if injector.stealBatch(local) {
		if p, ok := local.popFront(); ok {
			return p, true
		}
	}
	for _, peer := range peers {
		if peer.stealBatch(local) {
			if p, ok := local.popFront(); ok {
				return p, true
			}
		}
	}
	return "", false
}

// processPath classifies one directory and enqueues its non-artifact,
// non-hidden subdirectories. It returns false when the result channel send
// failed because ctx was canceled, signaling the caller to stop this
// worker immediately.
func processPath(ctx context.Context, path string, local *deque, anchors []anchor, finished *atomic.Bool, cfg Config) bool {
	info, err := os.Lstat(path)
	if err != nil {
		logDebug(cfg.Logger, "lstat failed", path, err)
		return true
	}
	if info.Mode()&os.ModeSymlink != 0 {
		if !cfg.Options.FollowSymlinks {
			return true
		}
		resolved, err := os.Stat(path)
		if err != nil || !resolved.IsDir() {
			return true
		}
	} else if !info.IsDir() {
		return true
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		logDebug(cfg.Logger, "readdir failed", path, err)
		return true
	}

	matched := cfg.Registry.Classify(path, entries, cfg.Filter)
	for _, kind := range matched {
		select {
		case cfg.Results <- Result{Path: path, Kind: kind}:
		case <-ctx.Done():
			finished.Store(true)
			return false
		}
	}

	boundary := anchorFor(anchors, path)

	var children []string
	for _, e := range entries {
		name := e.Name()
		isDir := e.IsDir()
		isSymlink := e.Type()&os.ModeSymlink != 0

		if !isDir && !isSymlink {
			continue
		}
		if isSymlink {
			if !cfg.Options.FollowSymlinks {
				continue
			}
			childInfo, err := os.Stat(filepath.Join(path, name))
			if err != nil || !childInfo.IsDir() {
				continue
			}
		}
		if cfg.Options.SkipHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if len(matched) > 0 && anyArtifactChild(cfg.Registry, matched, name) {
			continue
		}

		childPath := filepath.Join(path, name)
		if cfg.Options.SameFileSystem && boundary != nil {
			childInfo, err := os.Lstat(childPath)
			if err == nil && !fswalk.SameDevice(boundary.info, childInfo) {
				continue
			}
		}
		if len(cfg.Ignore) > 0 && boundary != nil {
			if rel, err := filepath.Rel(boundary.path, childPath); err == nil && core.IsIgnored(rel, cfg.Ignore) {
				continue
			}
		}
		children = append(children, childPath)
	}

	local.pushBack(children...)
	return true
}

func anyArtifactChild(reg *classify.Registry, matched []classify.Kind, name string) bool {
	for _, k := range matched {
		if reg.IsArtifactChild(k, name) {
			return true
		}
	}
	return false
}

// anchorFor returns the seed anchor that path is equal to or beneath,
// preferring the longest (most specific) match. Containment is decided with
// filepath.Rel, so unclean seed roots such as "." or "dir/" still match the
// cleaned child paths filepath.Join produces.
func anchorFor(anchors []anchor, path string) *anchor {
	var best *anchor
	for i := range anchors {
		a := &anchors[i]
		rel, err := filepath.Rel(a.path, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if best == nil || len(a.path) > len(best.path) {
			best = a
		}
	}
	return best
}

func logDebug(logger *slog.Logger, msg, path string, err error) {
	if logger == nil {
		return
	}
	logger.Debug(msg, slog.String("path", path), slog.Any("error", err))
}
