package report

import (
	"testing"

	"github.com/fakeyudi/aura/internal/workspace"
)

func manySmall(n int, size int64) []workspace.FileStamp {
	files := make([]workspace.FileStamp, n)
	for i := range files {
		files[i] = workspace.FileStamp{Path: "small", Size: size}
	}
	return files
}

func TestAuditBloatGrades(t *testing.T) {
	const mib = 1 << 20

	tests := []struct {
		name  string
		files []workspace.FileStamp
		want  string
	}{
		{
			name: "empty workspace",
			want: "A",
		},
		{
			name: "all small files",
			files: []workspace.FileStamp{
				{Path: "a", Size: 100}, {Path: "b", Size: 5000},
			},
			want: "A",
		},
		{
			name: "one large file dominating",
			files: []workspace.FileStamp{
				{Path: "blob", Size: 90 * mib}, {Path: "src", Size: 1000},
			},
			want: "F",
		},
		{
			name: "every file oversized",
			files: []workspace.FileStamp{
				{Path: "asset", Size: 2 * mib}, {Path: "dump", Size: 18 * mib},
			},
			want: "F",
		},
		{
			name: "moderate large share",
			files: append(
				// 18 MiB spread over files at the size threshold, which do
				// not count as large, plus one 2 MiB offender: 10% share.
				manySmall(18, mib),
				workspace.FileStamp{Path: "asset", Size: 2 * mib},
			),
			want: "B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AuditBloat(tt.files).Grade; got != tt.want {
				t.Errorf("Grade = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuditBloatLargestList(t *testing.T) {
	files := make([]workspace.FileStamp, 15)
	for i := range files {
		files[i] = workspace.FileStamp{Path: "f", Size: int64(i + 1)}
	}

	r := AuditBloat(files)
	if len(r.Largest) != 10 {
		t.Fatalf("Largest has %d entries, want 10", len(r.Largest))
	}
	if r.Largest[0].Size != 15 {
		t.Errorf("Largest[0].Size = %d, want 15", r.Largest[0].Size)
	}
	for i := 1; i < len(r.Largest); i++ {
		if r.Largest[i].Size > r.Largest[i-1].Size {
			t.Fatal("Largest is not sorted descending")
		}
	}
}

func TestAuditBloatTotals(t *testing.T) {
	const mib = 1 << 20
	files := []workspace.FileStamp{
		{Path: "big", Size: 3 * mib},
		{Path: "small", Size: 512},
	}

	r := AuditBloat(files)
	if r.Files != 2 {
		t.Errorf("Files = %d", r.Files)
	}
	if r.TotalBytes != 3*mib+512 {
		t.Errorf("TotalBytes = %d", r.TotalBytes)
	}
	if r.LargeBytes != 3*mib {
		t.Errorf("LargeBytes = %d, want only the oversized file", r.LargeBytes)
	}
}

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1536, "1.5 KiB"},
		{3 << 20, "3.0 MiB"},
		{1 << 30, "1.0 GiB"},
	}
	for _, tt := range tests {
		if got := HumanBytes(tt.n); got != tt.want {
			t.Errorf("HumanBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
