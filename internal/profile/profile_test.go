package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if Exists() {
		t.Fatal("fresh HOME should have no profile")
	}

	want := &Profile{Name: "alice", DefaultWindowHours: 8}
	if err := Save(want); err != nil {
		t.Fatal(err)
	}
	if !Exists() {
		t.Fatal("profile should exist after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if *got != *want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestLoadMalformedProfile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "aura")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "profile.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed profile")
	}
}

func TestLoadMissingProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing profile")
	}
}
