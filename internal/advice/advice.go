// Package advice issues a single bounded request to an external
// advice-generation service. The call is attempted once, abandoned at a
// hard ceiling, and every failure mode degrades to a typed result the
// caller can render as a notice.
package advice

import (
	"context"
	"errors"
	"strings"
	"time"
)

// RequestCeiling is the hard upper bound on one advice request. The
// ceiling is enforced here, never trusted from the external process.
const RequestCeiling = 30 * time.Second

// Advisor is the external advice collaborator: given a short prompt it
// returns free-form text. Implementations must honor ctx cancellation,
// but the Gateway does not rely on it — a misbehaving advisor is
// abandoned at the ceiling regardless.
type Advisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

// Outcome is the variant tag of a Result.
type Outcome int

const (
	// OutcomeDisabled is the zero value: advice was never requested.
	OutcomeDisabled Outcome = iota
	OutcomeOK
	OutcomeTimedOut
	OutcomeUnavailable
)

// Result is the settled outcome of one advice request.
type Result struct {
	Outcome Outcome
	Text    string // set when Outcome == OutcomeOK
	Err     error  // set for TimedOut / Unavailable
}

// Disabled is the result used when advice was never requested.
func Disabled() Result { return Result{Outcome: OutcomeDisabled} }

// State tracks the gateway's progress through its single request.
type State int

const (
	StateIdle State = iota
	StateWaiting
	StateResolved
	StateTimedOut
	StateFailed
)

// Gateway wraps an Advisor with the ceiling timeout and the
// IDLE → WAITING → {RESOLVED, TIMED_OUT, FAILED} lifecycle.
// A Gateway serves exactly one request; construct a new one per use.
type Gateway struct {
	advisor Advisor
	ceiling time.Duration
	state   State
}

// NewGateway returns a gateway around advisor with the default ceiling.
func NewGateway(advisor Advisor) *Gateway {
	return &Gateway{advisor: advisor, ceiling: RequestCeiling}
}

// State returns the gateway's current lifecycle state, for diagnostics.
func (g *Gateway) State() State { return g.state }

// Request issues the single advice request. It returns at or before the
// ceiling even if the advisor never responds: the advisor runs in its own
// goroutine and is abandoned (its context cancelled) when the deadline
// passes. Cancelling ctx settles the request immediately.
func (g *Gateway) Request(ctx context.Context, prompt string) Result {
	g.state = StateWaiting

	cctx, cancel := context.WithTimeout(ctx, g.ceiling)
	defer cancel()

	type reply struct {
		text string
		err  error
	}
	ch := make(chan reply, 1)
	go func() {
		text, err := g.advisor.Advise(cctx, prompt)
		ch <- reply{text: text, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			if errors.Is(r.err, context.DeadlineExceeded) {
				g.state = StateTimedOut
				return Result{Outcome: OutcomeTimedOut, Err: r.err}
			}
			g.state = StateFailed
			return Result{Outcome: OutcomeUnavailable, Err: r.err}
		}
		text := strings.TrimSpace(r.text)
		if text == "" {
			g.state = StateFailed
			return Result{Outcome: OutcomeUnavailable, Err: errors.New("advisor returned no output")}
		}
		g.state = StateResolved
		return Result{Outcome: OutcomeOK, Text: text}

	case <-cctx.Done():
		g.state = StateTimedOut
		return Result{Outcome: OutcomeTimedOut, Err: cctx.Err()}
	}
}
