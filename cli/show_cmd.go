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

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbillington/kondo/cli/tui"
	"github.com/tbillington/kondo/core"
	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/discover"
	"github.com/tbillington/kondo/core/fswalk"

	"golang.org/x/term"
)

// runShow implements the "kondo show" command: it launches the bubbletea
// project browser when stdout is a terminal, and falls back to a JSON
// listing otherwise.
func runShow(args []string) int {
	// Extract positional args (roots) before parsing flags so that
	// "kondo show . --kind cargo" works the same as "kondo show --kind cargo .".
	var flagArgs []string
	var positionalArgs []string
	for i := 0; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			flagArgs = append(flagArgs, args[i])
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") &&
				!isBoolFlag(args[i]) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		} else {
			positionalArgs = append(positionalArgs, args[i])
		}
	}

	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	var (
		kindFlag string
		jsonFlag bool
	)
	fs.StringVar(&kindFlag, "kind", "", "comma-separated list of project kinds to restrict discovery to")
	fs.BoolVar(&jsonFlag, "json", false, "output JSON instead of the interactive browser")

	if err := fs.Parse(flagArgs); err != nil {
		return 2
	}
	positionalArgs = append(positionalArgs, fs.Args()...)

	if len(positionalArgs) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: kondo show <roots...> [flags]")
		return 2
	}

	reg := classify.NewRegistry()

	cfg, err := core.LoadConfig(positionalArgs[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading .kondo.yaml: %v\n", err)
		return 2
	}
	roots := append(positionalArgs, cfg.Roots...)

	kindStrs := cfg.Kinds
	if kindFlag != "" {
		kindStrs = splitCSV(kindFlag)
	}
	filter, err := core.ParseKinds(reg, kindStrs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	ignore, err := core.LoadIgnorePatterns(positionalArgs[0], cfg.Exclude)
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

	var projects []tui.Project
	for p := range ch {
		projects = append(projects, toTUIProject(p))
	}

	if jsonFlag || !isTerminal() {
		return showJSON(projects)
	}

	m := tui.New(projects)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: TUI failed: %v\n", err)
		return 2
	}
	return 0
}

// toTUIProject gathers a ClassifiedProject's accounting data up front so the
// TUI never performs filesystem I/O while rendering.
func toTUIProject(p discover.ClassifiedProject) tui.Project {
	name, _ := p.DisplayName()
	focus, _ := p.Focus()
	lastMod, _ := p.LastModified()

	var breakdown []tui.BreakdownEntry
	if children, err := p.SizeBreakdown(); err == nil {
		for _, c := range children {
			breakdown = append(breakdown, tui.BreakdownEntry{
				Name:       c.Name,
				Bytes:      c.Bytes,
				IsArtifact: c.IsArtifact,
			})
		}
	}

	return tui.Project{
		Path:          p.Path,
		Kind:          p.Kind.String(),
		Label:         p.Label(),
		Name:          name,
		Focus:         focus,
		ArtifactBytes: p.ArtifactSize(),
		LastModified:  lastMod,
		Breakdown:     breakdown,
	}
}

func showJSON(projects []tui.Project) int {
	type row struct {
		Path         string `json:"path"`
		Kind         string `json:"kind"`
		Name         string `json:"name,omitempty"`
		Focus        string `json:"focus,omitempty"`
		ArtifactSize uint64 `json:"artifact_bytes"`
		LastModified string `json:"last_modified,omitempty"`
	}

	rows := make([]row, 0, len(projects))
	for _, p := range projects {
		var lastMod string
		if !p.LastModified.IsZero() {
			lastMod = p.LastModified.Format(time.RFC3339)
		}
		rows = append(rows, row{
			Path:         p.Path,
			Kind:         p.Kind,
			Name:         p.Name,
			Focus:        p.Focus,
			ArtifactSize: p.ArtifactBytes,
			LastModified: lastMod,
		})
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: marshalling JSON: %v\n", err)
		return 2
	}

	fmt.Println(string(data))
	return 0
}

func isBoolFlag(name string) bool {
	name = strings.TrimLeft(name, "-")
	switch name {
	case "json":
		return true
	default:
		return false
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
