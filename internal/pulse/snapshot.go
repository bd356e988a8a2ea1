package pulse

import (
	"time"

	"github.com/google/uuid"

	"github.com/fakeyudi/aura/internal/workspace"
)

// NoFilesSentinel is the latest-path value when the workspace is empty.
const NoFilesSentinel = "(no files)"

// TouchCounts holds per-horizon counts of recently modified files.
// The JSON field names are a stable contract for scripting consumers.
type TouchCounts struct {
	At5m  int `json:"5m"`
	At30m int `json:"30m"`
	At60m int `json:"60m"`
	At24h int `json:"24h"`
}

// Snapshot is the complete activity reading for one invocation. It is
// built fresh every run, never persisted, and immutable once returned.
type Snapshot struct {
	ID           string      `json:"id"`
	Latest       string      `json:"latest"`
	LatestAt     time.Time   `json:"latest_at,omitzero"`
	MinutesSince float64     `json:"minutes_since"`
	FocusScore   float64     `json:"focus_score"`
	Flow         FlowState   `json:"flow"`
	Touched      TouchCounts `json:"touched"`
}

// BuildSnapshot classifies the scanned workspace as of now. An empty
// workspace yields REST with a zero focus score, the sentinel latest path,
// and MinutesSince of -1 so consumers can tell "no data" from "edited just
// now".
func BuildSnapshot(files []workspace.FileStamp, now time.Time) Snapshot {
	snap := Snapshot{
		ID:     uuid.New().String(),
		Latest: NoFilesSentinel,
	}

	latest, ok := workspace.Latest(files)
	if !ok {
		snap.MinutesSince = -1
		snap.Flow = StateRest
		return snap
	}

	snap.Latest = latest.Path
	snap.LatestAt = latest.ModTime
	snap.MinutesSince = now.Sub(latest.ModTime).Minutes()
	if snap.MinutesSince < 0 {
		snap.MinutesSince = 0
	}
	snap.Flow, snap.FocusScore = Classify(snap.MinutesSince)

	for _, f := range files {
		age := now.Sub(f.ModTime)
		if age < 0 {
			age = 0
		}
		if age <= 5*time.Minute {
			snap.Touched.At5m++
		}
		if age <= 30*time.Minute {
			snap.Touched.At30m++
		}
		if age <= time.Hour {
			snap.Touched.At60m++
		}
		if age <= 24*time.Hour {
			snap.Touched.At24h++
		}
	}

	return snap
}
