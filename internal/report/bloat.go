package report

import (
	"fmt"
	"sort"

	"github.com/fakeyudi/aura/internal/workspace"
)

// largeFileBytes is the threshold above which a file counts as "large"
// for grading purposes.
const largeFileBytes = 1 << 20 // 1 MiB

// topFileCount is how many of the largest files the audit lists.
const topFileCount = 10

// BloatReport summarizes where the bytes in a workspace are going.
type BloatReport struct {
	Files      int
	TotalBytes int64
	LargeBytes int64 // bytes held by files over largeFileBytes
	Largest    []workspace.FileStamp
	Grade      string
}

// AuditBloat grades the workspace by how much of its bulk sits in
// oversized files.
func AuditBloat(files []workspace.FileStamp) BloatReport {
	r := BloatReport{Files: len(files)}
	for _, f := range files {
		r.TotalBytes += f.Size
		if f.Size > largeFileBytes {
			r.LargeBytes += f.Size
		}
	}

	sorted := make([]workspace.FileStamp, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })
	if len(sorted) > topFileCount {
		sorted = sorted[:topFileCount]
	}
	r.Largest = sorted

	r.Grade = grade(r.LargeBytes, r.TotalBytes)
	return r
}

// grade maps the large-file share of total bytes to a letter.
func grade(largeBytes, totalBytes int64) string {
	if totalBytes == 0 {
		return "A"
	}
	share := float64(largeBytes) / float64(totalBytes)
	switch {
	case share <= 0.05:
		return "A"
	case share <= 0.15:
		return "B"
	case share <= 0.30:
		return "C"
	case share <= 0.50:
		return "D"
	default:
		return "F"
	}
}

// HumanBytes formats a byte count for display.
func HumanBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(n)/float64(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
