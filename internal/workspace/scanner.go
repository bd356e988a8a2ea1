// Package workspace walks a project directory and records file modification
// timestamps. Scanning is best-effort: unreadable entries are skipped, never
// surfaced as errors.
package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultExcludes are directory names that never count as developer activity:
// VCS metadata, dependency caches, and build output.
var DefaultExcludes = []string{
	".git", ".hg", ".svn",
	"node_modules", "vendor", ".venv", "venv",
	"__pycache__", ".pytest_cache", ".mypy_cache",
	"dist", "build", "target", ".idea", ".vscode",
}

// FileStamp is one regular file and its last-modification time.
type FileStamp struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// ScanTree walks root recursively and returns a FileStamp for every regular
// file not under an excluded directory. Unreadable files and directories are
// skipped. Symlinks are not followed (WalkDir never descends through them),
// so link loops cannot recurse. An empty tree yields an empty slice, not an
// error; only an unreadable root is fatal.
func ScanTree(root string, exclude []string) ([]FileStamp, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("workspace root unreadable: %w", err)
	}

	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	var files []FileStamp
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: if it is a directory we can't descend into,
			// skip the whole subtree; either way, keep scanning.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil // file vanished or stat denied — skip
		}
		files = append(files, FileStamp{
			Path:    path,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
		return nil
	})

	return files, nil
}

// Latest returns the most recently modified file in files.
// ok is false when files is empty.
func Latest(files []FileStamp) (latest FileStamp, ok bool) {
	for _, f := range files {
		if !ok || f.ModTime.After(latest.ModTime) {
			latest = f
			ok = true
		}
	}
	return latest, ok
}
