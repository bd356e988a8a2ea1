package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Manifest is one discovered dependency manifest and its direct deps.
type Manifest struct {
	Path string
	Kind string // "go", "npm", "python", "rust", "conda"
	Deps []string
}

// manifestParsers maps well-known manifest filenames to their parsers.
// Discovery is root-level only — nested manifests belong to vendored or
// sub-project code and would skew the report.
var manifestParsers = []struct {
	name  string
	kind  string
	parse func(path string) ([]string, error)
}{
	{"go.mod", "go", parseGoMod},
	{"package.json", "npm", parsePackageJSON},
	{"requirements.txt", "python", parseRequirements},
	{"pyproject.toml", "python", parsePyproject},
	{"Cargo.toml", "rust", parseCargo},
	{"environment.yml", "conda", parseEnvironmentYML},
}

// DiscoverManifests finds and parses the dependency manifests at root.
// A manifest that exists but fails to parse is reported with no deps
// rather than aborting the whole report.
func DiscoverManifests(root string) []Manifest {
	var manifests []Manifest
	for _, mp := range manifestParsers {
		path := filepath.Join(root, mp.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		deps, err := mp.parse(path)
		if err != nil {
			deps = nil
		}
		sort.Strings(deps)
		manifests = append(manifests, Manifest{Path: path, Kind: mp.kind, Deps: deps})
	}
	return manifests
}

func parseGoMod(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, err
	}
	var deps []string
	for _, r := range f.Require {
		if !r.Indirect {
			deps = append(deps, r.Mod.Path)
		}
	}
	return deps, nil
}

func parsePackageJSON(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, err
	}
	var deps []string
	for name := range pkg.Dependencies {
		deps = append(deps, name)
	}
	for name := range pkg.DevDependencies {
		deps = append(deps, name+" (dev)")
	}
	return deps, nil
}

// parseRequirements reads a pip requirements file, stripping comments,
// options, and version constraints.
func parseRequirements(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var deps []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		for _, sep := range []string{"==", ">=", "<=", "~=", "!=", ">", "<", "[", ";"} {
			if i := strings.Index(line, sep); i >= 0 {
				line = line[:i]
			}
		}
		if line = strings.TrimSpace(line); line != "" {
			deps = append(deps, line)
		}
	}
	return deps, nil
}

func parsePyproject(path string) ([]string, error) {
	var doc struct {
		Project struct {
			Dependencies []string `toml:"dependencies"`
		} `toml:"project"`
		Tool struct {
			Poetry struct {
				Dependencies map[string]any `toml:"dependencies"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, err
	}
	var deps []string
	for _, d := range doc.Project.Dependencies {
		// Entries look like "requests>=2.28"; keep the package name.
		name := d
		for _, sep := range []string{"==", ">=", "<=", "~=", "!=", ">", "<", "[", " "} {
			if i := strings.Index(name, sep); i >= 0 {
				name = name[:i]
			}
		}
		deps = append(deps, name)
	}
	for name := range doc.Tool.Poetry.Dependencies {
		if name != "python" {
			deps = append(deps, name)
		}
	}
	return deps, nil
}

func parseCargo(path string) ([]string, error) {
	var doc struct {
		Dependencies map[string]any `toml:"dependencies"`
	}
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, err
	}
	var deps []string
	for name := range doc.Dependencies {
		deps = append(deps, name)
	}
	return deps, nil
}

// parseEnvironmentYML reads a conda environment file. Dependencies are
// either plain strings ("numpy=1.26") or nested maps ("pip: [...]").
func parseEnvironmentYML(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Dependencies []any `yaml:"dependencies"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var deps []string
	for _, d := range doc.Dependencies {
		s, ok := d.(string)
		if !ok {
			continue
		}
		if i := strings.IndexAny(s, "=<>"); i >= 0 {
			s = s[:i]
		}
		if s != "" {
			deps = append(deps, s)
		}
	}
	return deps, nil
}
