// Package termidle answers one question: how long since the developer last
// touched an interactive terminal session? The answer is platform-dependent
// and explicitly optional — on hosts where the query is unsupported or
// failing, the signal is "unknown", never zero.
package termidle

import (
	"strconv"
	"strings"
)

// Minutes is a possibly-unknown terminal inactivity duration.
type Minutes struct {
	Known bool
	Value float64
}

// Unknown reports that no terminal idle signal is available.
func Unknown() Minutes { return Minutes{} }

// Some wraps a known idle duration in minutes.
func Some(v float64) Minutes { return Minutes{Known: true, Value: v} }

// Runner executes the platform idle query and returns its stdout.
// Injected in tests; the default shells out to the real command.
type Runner func(name string, args ...string) (string, error)

// oldSessionMinutes stands in for who(1)'s "old" marker, meaning the
// session has been idle for more than a day.
const oldSessionMinutes = 24 * 60

// parseWho extracts the smallest idle duration from `who -u` output.
// Each line looks like
//
//	alice  pts/1  2026-08-27 09:12 00:13  4321 (:0)
//
// where the field after the login time is "." (active within the last
// minute), "old" (idle over 24h), or HH:MM. The smallest value across all
// sessions wins: any one active terminal means the developer is around.
func parseWho(out string) Minutes {
	best := Unknown()

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)

		// Locate the login time (HH:MM); the idle column follows it.
		for i, f := range fields {
			if !isClock(f) || i+1 >= len(fields) {
				continue
			}
			idle, ok := parseIdleField(fields[i+1])
			if ok && (!best.Known || idle < best.Value) {
				best = Some(idle)
			}
			break
		}
	}

	return best
}

// parseIdleField interprets a single who(1) IDLE column value.
func parseIdleField(s string) (float64, bool) {
	switch {
	case s == ".":
		return 0, true
	case s == "old":
		return oldSessionMinutes, true
	case isClock(s):
		h, _ := strconv.Atoi(s[:2])
		m, _ := strconv.Atoi(s[3:])
		return float64(h*60 + m), true
	}
	return 0, false
}

// isClock reports whether s is an HH:MM token.
func isClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
