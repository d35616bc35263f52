package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tbillington/kondo/core"
	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/discover"
	"github.com/tbillington/kondo/core/fswalk"
)

// scanOutput is one row of a scan's JSON output.
type scanOutput struct {
	Path         string `json:"path"`
	Kind         string `json:"kind"`
	Name         string `json:"name,omitempty"`
	Focus        string `json:"focus,omitempty"`
	ArtifactSize uint64 `json:"artifact_bytes"`
	LastModified string `json:"last_modified,omitempty"`
}

func runScan(args []string) int {
	scanFS := flag.NewFlagSet("scan", flag.ContinueOnError)
	var (
		kindFlag      string
		olderThanFlag string
		jsonFlag      bool
	)
	scanFS.StringVar(&kindFlag, "kind", "", "comma-separated list of project kinds to restrict discovery to")
	scanFS.StringVar(&olderThanFlag, "older-than", "", "only report projects not modified more recently than this (e.g. 2w, 3M)")
	scanFS.BoolVar(&jsonFlag, "json", false, "emit JSON instead of a table")
	// Extract positional args (roots) before parsing flags so that
	// "kondo scan . --json" works the same as "kondo scan --json .".
	var flagArgs, roots []string
	for i := 0; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			flagArgs = append(flagArgs, args[i])
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") &&
				!isBoolFlag(args[i]) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		} else {
			roots = append(roots, args[i])
		}
	}
	if err := scanFS.Parse(flagArgs); err != nil {
		return 2
	}
	roots = append(roots, scanFS.Args()...)
	if len(roots) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: kondo scan <roots...> [flags]")
		return 2
	}

	reg := classify.NewRegistry()

	cfg, err := core.LoadConfig(roots[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading .kondo.yaml: %v\n", err)
		return 2
	}
	roots = append(roots, cfg.Roots...)

	kindStrs := cfg.Kinds
	if kindFlag != "" {
		kindStrs = splitCSV(kindFlag)
	}
	filter, err := core.ParseKinds(reg, kindStrs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	var maxAge time.Duration
	if olderThanFlag != "" {
		maxAge, err = core.ParseAgeFilter(olderThanFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
	}

	ignore, err := core.LoadIgnorePatterns(roots[0], cfg.Exclude)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading .kondoignore: %v\n", err)
		return 2
	}
	opts := core.ApplyWalkerSettings(fswalk.Default(), cfg.Walker)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ch, err := discover.Discover(ctx, roots, filter,
		discover.WithRegistry(reg), discover.WithWalkerOptions(opts), discover.WithIgnore(ignore))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	var rows []scanOutput
	now := time.Now()
	for p := range ch {
		lastMod, err := p.LastModified()
		if err != nil {
			continue
		}
		if maxAge > 0 && now.Sub(lastMod) < maxAge {
			continue
		}

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

	if jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		return 0
	}

	printScanTable(rows)
	return 0
}

func printScanTable(rows []scanOutput) {
	if len(rows) == 0 {
		fmt.Println("no projects found")
		return
	}

	var total uint64
	for _, r := range rows {
		label := r.Name
		if label == "" {
			label = r.Path
		}
		if r.Focus != "" {
			label = fmt.Sprintf("%s (%s)", label, r.Focus)
		}
		fmt.Printf("%-10s %10s  %s\n", r.Kind, prettySize(r.ArtifactSize), label)
		total += r.ArtifactSize
	}
	fmt.Printf("\n%d projects, %s reclaimable\n", len(rows), prettySize(total))
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
