package pulse

import "github.com/fakeyudi/aura/internal/termidle"

// Source identifies which signal tripped an idle verdict.
type Source string

const (
	SourceFile     Source = "FILE"
	SourceTerminal Source = "TERMINAL"
	SourceForced   Source = "FORCED"
)

// Verdict is the combined judgment of whether the developer is inactive.
type Verdict struct {
	Idle    bool
	Minutes float64
	Source  Source
}

// DetectIdle reconciles the two independent idle signals. Either signal
// exceeding the threshold is sufficient. A forced verdict always wins and
// is recorded as such. An unknown terminal signal is ignored, not treated
// as zero.
func DetectIdle(fileIdleMin float64, term termidle.Minutes, thresholdMin float64, forced bool) Verdict {
	if fileIdleMin < 0 {
		fileIdleMin = 0
	}

	minutes := fileIdleMin
	if term.Known && term.Value > minutes {
		minutes = term.Value
	}

	switch {
	case forced:
		return Verdict{Idle: true, Minutes: minutes, Source: SourceForced}
	case fileIdleMin > thresholdMin:
		return Verdict{Idle: true, Minutes: minutes, Source: SourceFile}
	case term.Known && term.Value > thresholdMin:
		return Verdict{Idle: true, Minutes: minutes, Source: SourceTerminal}
	}
	return Verdict{Minutes: minutes, Source: SourceFile}
}
