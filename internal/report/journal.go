// Package report generates the plain-text insight reports: the dev
// journal, the dependency ecosystem summary, and the bloat audit. All of
// it is single-pass, stateless logic over the workspace.
package report

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/fakeyudi/aura/internal/workspace"
)

// GitRunner executes a git command and returns its output.
// This abstraction allows mocking in tests.
type GitRunner func(workDir string, args ...string) (string, error)

// DefaultGitRunner runs git as a real subprocess.
func DefaultGitRunner(workDir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = workDir
	out, err := cmd.Output()
	return string(out), err
}

// journalFrontMatter is the YAML header of a journal entry.
type journalFrontMatter struct {
	ID          string    `yaml:"id"`
	Date        time.Time `yaml:"date"`
	Author      string    `yaml:"author,omitempty"`
	WindowHours int       `yaml:"window_hours"`
}

// BuildJournal renders a markdown dev-journal entry covering the last
// window of activity: files touched (newest first) and commits made. Git
// being unavailable or the directory not being a repository is fine — the
// commits section just notes it.
func BuildJournal(root string, exclude []string, window time.Duration, author string, run GitRunner, now time.Time) (string, error) {
	files, err := workspace.ScanTree(root, exclude)
	if err != nil {
		return "", err
	}
	if run == nil {
		run = DefaultGitRunner
	}

	var touched []workspace.FileStamp
	for _, f := range files {
		if now.Sub(f.ModTime) <= window {
			touched = append(touched, f)
		}
	}
	sort.Slice(touched, func(i, j int) bool {
		return touched[i].ModTime.After(touched[j].ModTime)
	})

	front, err := yaml.Marshal(journalFrontMatter{
		ID:          uuid.New().String(),
		Date:        now,
		Author:      author,
		WindowHours: int(window.Hours()),
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(front)
	sb.WriteString("---\n\n")
	sb.WriteString("# Dev Journal — " + now.Format("2006-01-02") + "\n\n")

	sb.WriteString(fmt.Sprintf("## Touched files (%d)\n\n", len(touched)))
	if len(touched) == 0 {
		sb.WriteString("_no files modified in this window_\n")
	}
	for _, f := range touched {
		sb.WriteString(fmt.Sprintf("- %s (%s)\n", f.Path, f.ModTime.Format("15:04")))
	}
	sb.WriteString("\n")

	sb.WriteString("## Commits\n\n")
	since := now.Add(-window).Format(time.RFC3339)
	logOut, err := run(root, "log", "--oneline", "--since="+since)
	switch {
	case err != nil:
		sb.WriteString("_git history unavailable_\n")
	case strings.TrimSpace(logOut) == "":
		sb.WriteString("_no commits in this window_\n")
	default:
		for _, line := range strings.Split(strings.TrimRight(logOut, "\n"), "\n") {
			if line != "" {
				sb.WriteString("- " + line + "\n")
			}
		}
	}

	return sb.String(), nil
}
