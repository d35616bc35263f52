package classify

import "testing"

func TestCargoDisplayName(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "Cargo.toml", `[package]
name = "kondo"
version = "1.0.0"
`)

	rec := newCargoRecognizer()
	name, ok := rec.DisplayName(dir)
	if !ok || name != "kondo" {
		t.Fatalf("got (%q, %v), want (kondo, true)", name, ok)
	}
}

func TestCargoDisplayName_Missing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	rec := newCargoRecognizer()
	if _, ok := rec.DisplayName(dir); ok {
		t.Fatal("expected no name for missing manifest")
	}
}

func TestCargoFocus_Bevy(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "Cargo.toml", `[package]
name = "game"

[dependencies]
bevy = "0.14"
`)

	rec := newCargoRecognizer()
	focus, ok := rec.Focus(dir)
	if !ok || focus != "Bevy" {
		t.Fatalf("got (%q, %v), want (Bevy, true)", focus, ok)
	}
}

func TestCargoFocus_WorkspaceBevy(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "Cargo.toml", `[package]
name = "game"

[workspace.dependencies]
bevy = "0.14"
`)

	rec := newCargoRecognizer()
	focus, ok := rec.Focus(dir)
	if !ok || focus != "Bevy" {
		t.Fatalf("got (%q, %v), want (Bevy, true)", focus, ok)
	}
}

func TestCargoFocus_None(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "Cargo.toml", `[package]
name = "tool"

[dependencies]
serde = "1"
`)

	rec := newCargoRecognizer()
	if _, ok := rec.Focus(dir); ok {
		t.Fatal("expected no focus without a bevy dependency")
	}
}
