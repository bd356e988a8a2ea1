package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanTreeSkipsExcludedDirs(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "main.go"), "package main")
	mustWrite(t, filepath.Join(root, "internal", "app.go"), "package internal")
	mustWrite(t, filepath.Join(root, "node_modules", "lib", "index.js"), "x")
	mustWrite(t, filepath.Join(root, ".git", "HEAD"), "ref: refs/heads/main")

	files, err := ScanTree(root, DefaultExcludes)
	if err != nil {
		t.Fatal(err)
	}

	paths := make(map[string]bool, len(files))
	for _, f := range files {
		rel, _ := filepath.Rel(root, f.Path)
		paths[rel] = true
	}

	if !paths["main.go"] || !paths[filepath.Join("internal", "app.go")] {
		t.Errorf("expected project files in scan, got %v", paths)
	}
	for p := range paths {
		if strings.HasPrefix(p, "node_modules") || strings.HasPrefix(p, ".git") {
			t.Errorf("excluded path %q leaked into scan", p)
		}
	}
}

func TestScanTreeEmptyDir(t *testing.T) {
	files, err := ScanTree(t.TempDir(), DefaultExcludes)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Fatalf("got %d files from an empty dir, want 0", len(files))
	}
}

func TestScanTreeMissingRoot(t *testing.T) {
	_, err := ScanTree(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestScanTreeExcludeMatchesNameNotRoot(t *testing.T) {
	// A root whose own basename is excluded must still be scanned; the
	// exclusion applies only to subdirectories.
	parent := t.TempDir()
	root := filepath.Join(parent, "vendor")
	mustWrite(t, filepath.Join(root, "file.txt"), "hello")

	files, err := ScanTree(root, DefaultExcludes)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1 (root dir name must not be excluded)", len(files))
	}
}

func TestLatest(t *testing.T) {
	root := t.TempDir()
	old := filepath.Join(root, "old.txt")
	fresh := filepath.Join(root, "fresh.txt")
	mustWrite(t, old, "old")
	mustWrite(t, fresh, "fresh")

	past := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	files, err := ScanTree(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	latest, ok := Latest(files)
	if !ok {
		t.Fatal("Latest reported no files")
	}
	if latest.Path != fresh {
		t.Errorf("Latest = %q, want %q", latest.Path, fresh)
	}
}

func TestLatestEmpty(t *testing.T) {
	if _, ok := Latest(nil); ok {
		t.Fatal("Latest(nil) reported ok")
	}
}
