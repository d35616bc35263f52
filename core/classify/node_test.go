package classify

import "testing"

func TestNodeIsProject(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name": "app"}`)

	rec := newNodeRecognizer()
	if !rec.IsProject(dir, readDir(t, dir)) {
		t.Fatal("expected Node match")
	}
}

func TestNodeIsProject_UnityField(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name": "app", "unity": "2019.4"}`)

	rec := newNodeRecognizer()
	if rec.IsProject(dir, readDir(t, dir)) {
		t.Fatal("expected no Node match for a Unity package manifest")
	}
}

func TestNodeDisplayName(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name": "my-app"}`)

	rec := newNodeRecognizer()
	name, ok := rec.DisplayName(dir)
	if !ok || name != "my-app" {
		t.Fatalf("got (%q, %v), want (my-app, true)", name, ok)
	}
}
