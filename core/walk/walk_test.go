package walk

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tbillington/kondo/core/classify"
	"github.com/tbillington/kondo/core/fswalk"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func collect(t *testing.T, ctx context.Context, cfg Config) []Result {
	t.Helper()
	results := make(chan Result, 256)
	cfg.Results = results

	done := make(chan struct{})
	go func() {
		Run(ctx, cfg)
		close(done)
	}()

	<-done
	close(results)

	var out []Result
	for r := range results {
		out = append(out, r)
	}
	return out
}

func TestRun_MinimalCargo(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, root, "Cargo.toml", "[package]\nname=\"demo\"\n")
	writeFile(t, root, "src/main.rs", "fn main() {}")
	writeFile(t, root, "target/x", "data")

	reg := classify.NewRegistry()
	results := collect(t, context.Background(), Config{
		Roots:      []string{root},
		Registry:   reg,
		Options:    fswalk.Default(),
		NumWorkers: 2,
	})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(results), results)
	}
	if results[0].Path != root || results[0].Kind != classify.Cargo {
		t.Fatalf("got %+v, want (%s, Cargo)", results[0], root)
	}
}

func TestRun_NestedPythonUnderCargo(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, root, "Cargo.toml", "[package]\nname=\"demo\"\n")
	writeFile(t, root, "target/x", "data")
	writeFile(t, root, "scripts/tool.py", "print(1)")
	writeFile(t, root, "scripts/__pycache__/y", "data")

	reg := classify.NewRegistry()
	results := collect(t, context.Background(), Config{
		Roots:      []string{root},
		Registry:   reg,
		Options:    fswalk.Default(),
		NumWorkers: 3,
	})

	want := map[string]classify.Kind{
		root:                           classify.Cargo,
		filepath.Join(root, "scripts"): classify.Python,
	}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d: %+v", len(results), len(want), results)
	}
	for _, r := range results {
		k, ok := want[r.Path]
		if !ok || k != r.Kind {
			t.Fatalf("unexpected result %+v, want %v", r, want)
		}
	}
}

func TestRun_HiddenDirPrunedButArtifactAccountedSeparately(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, root, "project.godot", "[application]\nconfig/name=\"Demo\"\n")
	writeFile(t, root, ".godot/cache/big", "data")

	reg := classify.NewRegistry()
	results := collect(t, context.Background(), Config{
		Roots:      []string{root},
		Registry:   reg,
		Options:    fswalk.Default(),
		NumWorkers: 2,
	})

	if len(results) != 1 || results[0].Kind != classify.Godot {
		t.Fatalf("got %+v, want exactly one Godot result", results)
	}
	// .godot must never itself be emitted as a separate walked entry.
	for _, r := range results {
		if r.Path != root {
			t.Fatalf("unexpected extra result %+v", r)
		}
	}
}

func TestRun_ContextCancelStopsAllWorkers(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	for i := 0; i < 200; i++ {
		writeFile(t, root, filepath.Join("d", string(rune('a'+i%26)), "x"), "data")
	}

	reg := classify.NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())

	results := make(chan Result) // unbuffered: forces workers to block on send
	cfg := Config{
		Roots:      []string{root},
		Registry:   reg,
		Options:    fswalk.Default(),
		NumWorkers: 4,
		Results:    results,
	}

	done := make(chan struct{})
	go func() {
		Run(ctx, cfg)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return within 2s of context cancellation")
	}
}
