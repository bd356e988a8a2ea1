package pulse

import (
	"time"

	"github.com/fakeyudi/aura/internal/workspace"
)

// BucketCount is the fixed number of histogram buckets. The bucket width is
// window/BucketCount, so resolution scales with the window length.
const BucketCount = 12

// Bucket is one time slice of the activity histogram. Buckets are
// contiguous, non-overlapping, and ordered oldest-first.
type Bucket struct {
	Start time.Time // inclusive
	End   time.Time // exclusive (the last bucket ends at now)
	Count int
}

// BuildHistogram assigns each file timestamp to exactly one bucket covering
// [now−window, now]. Timestamps older than the window are dropped; future
// timestamps (clock skew) land in the newest bucket. Empty buckets are
// represented explicitly with a zero count.
func BuildHistogram(files []workspace.FileStamp, window time.Duration, now time.Time) []Bucket {
	width := window / BucketCount
	start := now.Add(-window)

	buckets := make([]Bucket, BucketCount)
	for i := range buckets {
		buckets[i].Start = start.Add(time.Duration(i) * width)
		buckets[i].End = buckets[i].Start.Add(width)
	}
	buckets[BucketCount-1].End = now

	for _, f := range files {
		age := now.Sub(f.ModTime)
		if age > window {
			continue
		}
		if age < 0 {
			age = 0
		}
		idx := BucketCount - 1 - int(age/width)
		if idx < 0 {
			idx = 0 // age == window: the oldest bucket's inclusive edge
		}
		buckets[idx].Count++
	}

	return buckets
}
