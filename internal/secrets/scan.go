// Package secrets scans workspace file contents for leaked credentials
// and badly-permissioned env files. Scanning is best-effort and read-only:
// unreadable files are skipped, binary-looking and oversized files are
// ignored, nothing is ever modified.
package secrets

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fakeyudi/aura/internal/workspace"
)

// maxScanBytes caps how much of a single file is scanned. Credentials sit
// near the top of config files; giant artifacts are not worth reading.
const maxScanBytes = 1 << 20 // 1 MiB

// scanWorkers bounds the concurrent content readers.
const scanWorkers = 8

// Finding is one matched secret pattern in one file.
type Finding struct {
	Path  string
	Kind  string
	Match string
}

// EnvIssue is an env file whose permissions are looser than 0600.
type EnvIssue struct {
	Path string
	Mode fs.FileMode
}

// Report is the outcome of one workspace scan.
type Report struct {
	Findings     []Finding
	EnvIssues    []EnvIssue
	FilesScanned int
}

// Clean reports whether the scan found nothing to flag.
func (r Report) Clean() bool {
	return len(r.Findings) == 0 && len(r.EnvIssues) == 0
}

var patterns = []struct {
	kind string
	re   *regexp.Regexp
}{
	{"AWS Access Key", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"Google API Key", regexp.MustCompile(`AIza[0-9A-Za-z\-_]{35}`)},
	{"GitHub Token", regexp.MustCompile(`ghp_[0-9A-Za-z]{36}`)},
	{"Slack Token", regexp.MustCompile(`xox[baprs]-[0-9A-Za-z-]{10,48}`)},
}

// ScanTree scans every regular file under root (honoring the exclude list)
// for secret patterns and env-file permission problems. File contents are
// read by a bounded pool of workers.
func ScanTree(ctx context.Context, root string, exclude []string) (Report, error) {
	files, err := workspace.ScanTree(root, exclude)
	if err != nil {
		return Report{}, err
	}

	var (
		mu     sync.Mutex
		report Report
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scanWorkers)

	for _, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if isEnvFile(f.Path) {
				if issue, ok := checkEnvMode(f.Path); ok {
					mu.Lock()
					report.EnvIssues = append(report.EnvIssues, issue)
					mu.Unlock()
				}
			}

			found := scanFile(f.Path)
			mu.Lock()
			report.FilesScanned++
			report.Findings = append(report.Findings, found...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return report, nil
}

// scanFile reads one file (up to maxScanBytes) and returns all pattern
// matches. Unreadable or binary-looking files yield nothing.
func scanFile(path string) []Finding {
	fh, err := os.Open(path)
	if err != nil {
		return nil // best-effort: skip unreadable files
	}
	defer fh.Close()

	content, err := io.ReadAll(io.LimitReader(fh, maxScanBytes))
	if err != nil {
		return nil
	}

	if bytes.IndexByte(content, 0) >= 0 {
		return nil // binary
	}

	var findings []Finding
	for _, p := range patterns {
		for _, m := range p.re.FindAllString(string(content), -1) {
			findings = append(findings, Finding{Path: path, Kind: p.kind, Match: m})
		}
	}
	return findings
}

// isEnvFile matches ".env" and anything ending in ".env" (".env.local" is
// deliberately not matched — it is a different convention).
func isEnvFile(path string) bool {
	base := filepath.Base(path)
	return base == ".env" || strings.HasSuffix(base, ".env")
}

// checkEnvMode flags env files readable by anyone but the owner.
func checkEnvMode(path string) (EnvIssue, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return EnvIssue{}, false
	}
	mode := info.Mode().Perm()
	if mode != 0o600 {
		return EnvIssue{Path: path, Mode: mode}, true
	}
	return EnvIssue{}, false
}

// Mask shortens a matched secret for display so the report itself does not
// become a leak.
func Mask(match string) string {
	if len(match) > 8 {
		return match[:8] + "…"
	}
	return match
}
