package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMergePrecedence(t *testing.T) {
	global := &Config{
		ExcludeDirs:    []string{"global-dir"},
		AdviceCommand:  "global-cli",
		AnthropicModel: "global-model",
	}
	project := &Config{
		AdviceCommand: "project-cli",
	}

	got := Merge(global, project)

	if got.AdviceCommand != "project-cli" {
		t.Errorf("AdviceCommand = %q, project must win", got.AdviceCommand)
	}
	if got.AnthropicModel != "global-model" {
		t.Errorf("AnthropicModel = %q, global must fill project gaps", got.AnthropicModel)
	}
	if len(got.ExcludeDirs) != 1 || got.ExcludeDirs[0] != "global-dir" {
		t.Errorf("ExcludeDirs = %v", got.ExcludeDirs)
	}
}

func TestMergeNilConfigsYieldDefaults(t *testing.T) {
	got := Merge(nil, nil)
	def := Defaults()

	if len(got.ExcludeDirs) != len(def.ExcludeDirs) {
		t.Errorf("ExcludeDirs = %v, want defaults", got.ExcludeDirs)
	}
	if got.AdviceCommand != "" {
		t.Errorf("AdviceCommand = %q, want empty (resolved at use site)", got.AdviceCommand)
	}
}

func TestLoadGlobalMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := LoadGlobal()
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("LoadGlobal returned nil for missing file")
	}
	if len(got.ExcludeDirs) == 0 {
		t.Error("missing global config should carry default excludes")
	}
}

func TestLoadGlobalParsesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "aura")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `{"exclude_dirs": ["tmp"], "advice_command": "my-cli"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadGlobal()
	if err != nil {
		t.Fatal(err)
	}
	if got.AdviceCommand != "my-cli" {
		t.Errorf("AdviceCommand = %q", got.AdviceCommand)
	}
	if len(got.ExcludeDirs) != 1 || got.ExcludeDirs[0] != "tmp" {
		t.Errorf("ExcludeDirs = %v", got.ExcludeDirs)
	}
}

func TestLoadProjectMissingFileIsNil(t *testing.T) {
	t.Chdir(t.TempDir())

	got, err := LoadProject()
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("LoadProject = %+v, want nil for missing file", got)
	}
}

func TestLoadProjectMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".auraconfig"), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadProject()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Path != ".auraconfig" {
		t.Errorf("ParseError.Path = %q", perr.Path)
	}
}
