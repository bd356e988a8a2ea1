// Package ui renders pulse output: either a single machine-readable JSON
// record or the interactive lipgloss panels. The two modes never share
// rendering logic — a caller picks one per invocation.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/fakeyudi/aura/internal/pulse"
)

// ── Styles ────────────

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	flowBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))

	steadyBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	restBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	focusFillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	adviceBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("178")).
			Padding(0, 2)

	adviceTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("178"))

	noticeStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("178"))
)

const focusBarWidth = 20

// WriteCompact emits the snapshot as exactly one JSON line. Field names are
// a stable contract for scripting consumers.
func WriteCompact(w io.Writer, snap pulse.Snapshot) error {
	return json.NewEncoder(w).Encode(snap)
}

// StatusPanel renders the flow-state summary box.
func StatusPanel(snap pulse.Snapshot, verdict pulse.Verdict) string {
	var sb strings.Builder

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", label)) + "  " + value + "\n")
	}

	row("State", flowBadge(snap.Flow))
	row("Focus", focusBar(snap.FocusScore)+fmt.Sprintf("  %.2f", snap.FocusScore))
	if snap.Latest == pulse.NoFilesSentinel {
		row("Latest", dimStyle.Render("no activity detected"))
	} else {
		row("Latest", fmt.Sprintf("%s %s", snap.Latest, dimStyle.Render(fmt.Sprintf("(%s ago)", humanMinutes(snap.MinutesSince)))))
	}
	row("Touched", fmt.Sprintf("5m:%d  30m:%d  60m:%d  24h:%d",
		snap.Touched.At5m, snap.Touched.At30m, snap.Touched.At60m, snap.Touched.At24h))

	if verdict.Idle {
		row("Idle", fmt.Sprintf("%s — break suggested %s",
			humanMinutes(verdict.Minutes), dimStyle.Render("("+strings.ToLower(string(verdict.Source))+")")))
	} else {
		row("Idle", dimStyle.Render("no"))
	}

	return panelTitleStyle.Render(" aura pulse ") + "\n" +
		panelStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// Histogram renders the per-bucket activity bar chart: one fixed-width
// column per bucket, oldest on the left, regardless of sparsity.
func Histogram(buckets []pulse.Bucket, window time.Duration) string {
	const rows = 5

	maxCount := 0
	for _, b := range buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	var sb strings.Builder
	for r := rows; r >= 1; r-- {
		for i, b := range buckets {
			if i > 0 {
				sb.WriteString(" ")
			}
			if barHeight(b.Count, maxCount, rows) >= r {
				sb.WriteString(barStyle.Render("██"))
			} else {
				sb.WriteString(dimStyle.Render("··"))
			}
		}
		sb.WriteString("\n")
	}

	width := len(buckets)*3 - 1
	sb.WriteString(dimStyle.Render(strings.Repeat("─", width)) + "\n")

	left := "-" + humanWindow(window)
	right := "now"
	pad := width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	sb.WriteString(dimStyle.Render(left + strings.Repeat(" ", pad) + right))

	return panelTitleStyle.Render(" activity ") + "\n" +
		panelStyle.Render(sb.String())
}

// barHeight scales a bucket count to a column height in [0, rows].
func barHeight(count, maxCount, rows int) int {
	if count == 0 || maxCount == 0 {
		return 0
	}
	h := int(math.Ceil(float64(count) / float64(maxCount) * float64(rows)))
	if h < 1 {
		h = 1
	}
	return h
}

// AdviceBox renders the break-suggestion panel, wrapping the advice text
// to the given width.
func AdviceBox(text string, width int) string {
	if width <= 0 || width > 80 {
		width = 80
	}
	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	body := wordwrap.String(strings.TrimSpace(text), inner)
	return adviceBoxStyle.Render(adviceTitleStyle.Render("AURA ADVICE") + "\n\n" + body)
}

// Notice renders a short inline status line, used when an attempted advice
// call did not produce a panel.
func Notice(msg string) string {
	return noticeStyle.Render("· " + msg)
}

func flowBadge(state pulse.FlowState) string {
	switch state {
	case pulse.StateFlow:
		return flowBadgeStyle.Render("● FLOW")
	case pulse.StateSteady:
		return steadyBadgeStyle.Render("◐ STEADY")
	default:
		return restBadgeStyle.Render("○ REST")
	}
}

func focusBar(score float64) string {
	fill := int(math.Round(score * focusBarWidth))
	if fill < 0 {
		fill = 0
	}
	if fill > focusBarWidth {
		fill = focusBarWidth
	}
	return focusFillStyle.Render(strings.Repeat("█", fill)) +
		dimStyle.Render(strings.Repeat("░", focusBarWidth-fill))
}

// humanMinutes formats a minute count the way a person says it.
func humanMinutes(min float64) string {
	if min < 0 {
		return "–"
	}
	if min < 60 {
		return fmt.Sprintf("%.0fm", min)
	}
	h := int(min) / 60
	m := int(min) % 60
	return fmt.Sprintf("%dh%02dm", h, m)
}

func humanWindow(window time.Duration) string {
	if h := window.Hours(); h >= 1 {
		return fmt.Sprintf("%.0fh", h)
	}
	return fmt.Sprintf("%.0fm", window.Minutes())
}
