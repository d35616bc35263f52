package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tbillington/kondo/core"
	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/discover"
	"github.com/tbillington/kondo/core/fswalk"
)

// runWatch implements the "kondo watch" command: it watches a tree for
// filesystem changes and re-runs discovery, debounced, after each burst of
// activity.
func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	var (
		kindFlag string
		debounce time.Duration
	)
	fs.StringVar(&kindFlag, "kind", "", "comma-separated list of project kinds to restrict discovery to")
	fs.DurationVar(&debounce, "debounce", 500*time.Millisecond, "debounce interval for filesystem changes")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	target := "."
	if fs.NArg() > 0 {
		target = fs.Arg(0)
	}

	reg := classify.NewRegistry()

	cfg, err := core.LoadConfig(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading .kondo.yaml: %v\n", err)
		return 2
	}

	kindStrs := cfg.Kinds
	if kindFlag != "" {
		kindStrs = splitCSV(kindFlag)
	}
	filter, err := core.ParseKinds(reg, kindStrs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	ignore, err := core.LoadIgnorePatterns(target, cfg.Exclude)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading .kondoignore: %v\n", err)
		return 2
	}
	opts := core.ApplyWalkerSettings(fswalk.Default(), cfg.Walker)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: creating watcher: %v\n", err)
		return 2
	}
	defer watcher.Close()

	if err := addDirsRecursive(watcher, target); err != nil {
		fmt.Fprintf(os.Stderr, "error: watching directories: %v\n", err)
		return 2
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("watch: scanning %s (debounce: %s)\n", target, debounce)
	rescan(target, reg, filter, opts, ignore)

	var mu sync.Mutex
	var timer *time.Timer

	resetTimer := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			fmt.Print("\033[2J\033[H")
			fmt.Printf("watch: re-scanning %s\n", target)
			rescan(target, reg, filter, opts, ignore)
		})
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
				if event.Has(fsnotify.Create) {
					info, err := os.Stat(event.Name)
					if err == nil && info.IsDir() {
						_ = addDirsRecursive(watcher, event.Name)
					}
				}
				resetTimer()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-sigCh:
			fmt.Println("\nwatch: stopped")
			return 0
		}
	}
}

// rescan runs a single synchronous discovery pass and prints a scan table.
func rescan(target string, reg *classify.Registry, filter []classify.Kind, opts fswalk.Options, ignore []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := discover.Discover(ctx, []string{target}, filter,
		discover.WithRegistry(reg), discover.WithWalkerOptions(opts), discover.WithIgnore(ignore))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	var rows []scanOutput
	for p := range ch {
		lastMod, _ := p.LastModified()
		name, _ := p.DisplayName()
		focus, _ := p.Focus()
		rows = append(rows, scanOutput{
			Path:         p.Path,
			Kind:         p.Kind.String(),
			Name:         name,
			Focus:        focus,
			ArtifactSize: p.ArtifactSize(),
			LastModified: lastMod.Format(time.RFC3339),
		})
	}

	printScanTable(rows)
}

// addDirsRecursive adds root and every descendant directory to watcher,
// skipping well-known directories whose contents churn heavily and would
// otherwise flood the watch loop with irrelevant events.
func addDirsRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if base == ".git" || base == "node_modules" || base == "target" || base == ".kondo" {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
