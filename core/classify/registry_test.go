package classify

import (
	"reflect"
	"testing"
)

func TestClassify_MinimalCargo(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "Cargo.toml", `[package]
name = "demo"
`)
	writeFile(t, dir, "src/main.rs", "fn main() {}")

	reg := NewRegistry()
	kinds := reg.Classify(dir, readDir(t, dir), nil)
	if !reflect.DeepEqual(kinds, []Kind{Cargo}) {
		t.Fatalf("got %v, want [Cargo]", kinds)
	}
}

func TestClassify_NoMatch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "hello")

	reg := NewRegistry()
	kinds := reg.Classify(dir, readDir(t, dir), nil)
	if len(kinds) != 0 {
		t.Fatalf("got %v, want none", kinds)
	}
}

func TestClassify_MultipleKindsSameDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "Cargo.toml", `[package]
name = "demo"
`)
	writeFile(t, dir, "package.json", `{"name": "demo"}`)

	reg := NewRegistry()
	kinds := reg.Classify(dir, readDir(t, dir), nil)
	if !reflect.DeepEqual(kinds, []Kind{Cargo, Node}) {
		t.Fatalf("got %v, want [Cargo Node]", kinds)
	}
}

func TestClassify_UnityMasqueradingAsNode(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name": "my-unity-pkg", "unity": "2019.4"}`)

	reg := NewRegistry()
	kinds := reg.Classify(dir, readDir(t, dir), nil)
	if len(kinds) != 0 {
		t.Fatalf("got %v, want no Node match", kinds)
	}

	writeFile(t, dir, "Assembly-CSharp.csproj", "<Project/>")
	kinds = reg.Classify(dir, readDir(t, dir), nil)
	if !reflect.DeepEqual(kinds, []Kind{Unity}) {
		t.Fatalf("got %v, want [Unity]", kinds)
	}
}

func TestClassify_AmbiguousDotnetGodot(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "project.godot", "[application]\nconfig/name=\"Demo\"\n")
	writeFile(t, dir, "Game.csproj", "<Project/>")

	reg := NewRegistry()
	kinds := reg.Classify(dir, readDir(t, dir), nil)
	if !reflect.DeepEqual(kinds, []Kind{Godot}) {
		t.Fatalf("got %v, want [Godot] (Dotnet suppressed)", kinds)
	}
}

func TestClassify_AmbiguousDotnetUnity(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "Assembly-CSharp.csproj", "<Project/>")
	writeFile(t, dir, "Game.csproj", "<Project/>")

	reg := NewRegistry()
	kinds := reg.Classify(dir, readDir(t, dir), nil)
	if !reflect.DeepEqual(kinds, []Kind{Unity}) {
		t.Fatalf("got %v, want [Unity]", kinds)
	}
}

func TestClassify_Filter(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "Cargo.toml", "[package]\nname=\"demo\"\n")
	writeFile(t, dir, "package.json", `{"name": "demo"}`)

	reg := NewRegistry()
	kinds := reg.Classify(dir, readDir(t, dir), []Kind{Node})
	if !reflect.DeepEqual(kinds, []Kind{Node}) {
		t.Fatalf("got %v, want [Node]", kinds)
	}
}

func TestIsArtifactChild(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	if !reg.IsArtifactChild(Cargo, "target") {
		t.Fatal("expected target to be an artifact child of Cargo")
	}
	if reg.IsArtifactChild(Cargo, "src") {
		t.Fatal("src must not be an artifact child of Cargo")
	}
	if !reg.IsArtifactChild(SBT, "project") {
		t.Fatal("expected project/target's leading segment to match")
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	if got := reg.Label(Cargo); got != "Cargo" {
		t.Fatalf("got %q, want Cargo", got)
	}
}
