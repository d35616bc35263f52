// Package main is the entry point for the kondo CLI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// extractInterspersedArgs reorders args so that top-level bool flags (-v,
// --version) come before positional arguments, allowing "kondo scan . -v" to
// work the same as "kondo -v scan .". Subcommand-specific flags are left in
// place for the subcommand's own flag.FlagSet to parse.
func extractInterspersedArgs(args []string) []string {
	var flags, rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			rest = append(rest, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") {
			rest = append(rest, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if eq := strings.Index(name, "="); eq >= 0 {
			name = name[:eq]
		}
		if isTopLevelBoolFlag(name) {
			flags = append(flags, arg)
		} else {
			rest = append(rest, arg)
		}
	}
	return append(flags, rest...)
}

func isTopLevelBoolFlag(name string) bool {
	switch name {
	case "version", "v":
		return true
	}
	return false
}

// run executes the CLI and returns the exit code.
func run(args []string) int {
	args = extractInterspersedArgs(args)
	fs := flag.NewFlagSet("kondo", flag.ContinueOnError)

	var versionFlag bool
	fs.BoolVar(&versionFlag, "version", false, "print version and exit")
	fs.BoolVar(&versionFlag, "v", false, "print version and exit (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kondo <command> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  scan <roots...>   Discover projects and report reclaimable space\n")
		fmt.Fprintf(os.Stderr, "  show <roots...>   Browse discovered projects interactively\n")
		fmt.Fprintf(os.Stderr, "  clean <roots...>  Delete build artifacts of discovered projects\n")
		fmt.Fprintf(os.Stderr, "  watch [root]      Re-run discovery as the tree changes (default root: .)\n")
		fmt.Fprintf(os.Stderr, "  version           Print version and exit\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if versionFlag {
		printVersion()
		return 0
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		fs.Usage()
		return 2
	}

	command := remaining[0]
	switch command {
	case "scan":
		return runScan(remaining[1:])
	case "show":
		return runShow(remaining[1:])
	case "clean":
		return runClean(remaining[1:])
	case "watch":
		return runWatch(remaining[1:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		fs.Usage()
		return 2
	}
}

func printVersion() {
	fmt.Printf("kondo %s (commit: %s, built: %s)\n", version, commit, date)
}
