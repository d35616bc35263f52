package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tbillington/kondo/core/classify"
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

func TestDiscover_NoRoots(t *testing.T) {
	t.Parallel()
	if _, err := Discover(context.Background(), nil, nil); err != ErrNoRoots {
		t.Fatalf("got %v, want ErrNoRoots", err)
	}
}

func TestDiscover_MinimalCargo(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, root, "Cargo.toml", "[package]\nname=\"demo\"\n")
	writeFile(t, root, "target/blob", "0123456789")

	ch, err := Discover(context.Background(), []string{root}, nil, WithNumWorkers(2))
	if err != nil {
		t.Fatal(err)
	}

	var got []ClassifiedProject
	for p := range ch {
		got = append(got, p)
	}

	if len(got) != 1 {
		t.Fatalf("got %d projects, want 1: %+v", len(got), got)
	}
	if got[0].Kind != classify.Cargo {
		t.Fatalf("got kind %v, want Cargo", got[0].Kind)
	}
	if name, ok := got[0].DisplayName(); !ok || name != "demo" {
		t.Fatalf("got display name (%q, %v), want (demo, true)", name, ok)
	}
	if size := got[0].ArtifactSize(); size != 10 {
		t.Fatalf("got artifact size %d, want 10", size)
	}
}

func TestDiscover_KindFilter(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, root, "Cargo.toml", "[package]\nname=\"demo\"\n")
	writeFile(t, root, "package.json", `{"name": "demo"}`)

	ch, err := Discover(context.Background(), []string{root}, []classify.Kind{classify.Node}, WithNumWorkers(2))
	if err != nil {
		t.Fatal(err)
	}

	var got []ClassifiedProject
	for p := range ch {
		got = append(got, p)
	}

	if len(got) != 1 || got[0].Kind != classify.Node {
		t.Fatalf("got %+v, want exactly one Node result", got)
	}
}

func TestDiscover_WithIgnorePrunesMatchingSubdir(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, root, "Cargo.toml", "[package]\nname=\"demo\"\n")
	writeFile(t, root, "vendor/sub/package.json", `{"name": "sub"}`)
	writeFile(t, root, "scripts/package.json", `{"name": "scripts"}`)

	ch, err := Discover(context.Background(), []string{root}, nil, WithNumWorkers(2), WithIgnore([]string{"vendor/"}))
	if err != nil {
		t.Fatal(err)
	}

	var got []ClassifiedProject
	for p := range ch {
		got = append(got, p)
	}

	for _, p := range got {
		if filepath.Base(filepath.Dir(p.Path)) == "vendor" || filepath.Base(p.Path) == "vendor" {
			t.Fatalf("vendor subtree should have been pruned, got %+v", got)
		}
	}
	if len(got) != 2 {
		t.Fatalf("got %d projects, want 2 (root Cargo + scripts Node): %+v", len(got), got)
	}
}

func TestDiscover_CancelClosesChannelPromptly(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	for i := 0; i < 100; i++ {
		writeFile(t, root, filepath.Join("d", string(rune('a'+i%26)), "x"), "data")
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Discover(ctx, []string{root}, nil, WithNumWorkers(4), WithResultBuffer(0))
	if err != nil {
		t.Fatal(err)
	}

	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// A few in-flight results may still land before teardown
			// completes; drain until the channel closes.
			for range ch {
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close within 2s of cancellation")
	}
}
