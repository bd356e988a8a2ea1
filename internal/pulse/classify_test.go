package pulse

import (
	"testing"

	"pgregory.net/rapid"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		minutes float64
		want    FlowState
	}{
		{0, StateFlow},
		{2, StateFlow},
		{4.99, StateFlow},
		{5, StateSteady}, // boundary: 5 is no longer FLOW
		{5.01, StateSteady},
		{29.99, StateSteady},
		{30, StateSteady}, // boundary: 30 is still STEADY
		{30.01, StateRest},
		{45, StateRest},
		{10000, StateRest},
	}
	for _, tt := range tests {
		got, _ := Classify(tt.minutes)
		if got != tt.want {
			t.Errorf("Classify(%v) state = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}

func TestClassifyFocusScoreScenario(t *testing.T) {
	// Edited two minutes ago: in flow, focus ≈ 0.8.
	state, score := Classify(2)
	if state != StateFlow {
		t.Fatalf("Classify(2) state = %v, want FLOW", state)
	}
	if score < 0.79 || score > 0.81 {
		t.Fatalf("Classify(2) score = %v, want ≈0.8", score)
	}
}

func TestClassifyNegativeMinutes(t *testing.T) {
	state, score := Classify(-3)
	if state != StateFlow || score != 1.0 {
		t.Fatalf("Classify(-3) = (%v, %v), want (FLOW, 1.0)", state, score)
	}
}

// Focus score is monotonically non-increasing in elapsed time and always
// stays within [0,1].
func TestFocusScoreMonotoneAndBounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Float64Range(0, 1e6).Draw(rt, "a")
		b := rapid.Float64Range(0, 1e6).Draw(rt, "b")
		if a > b {
			a, b = b, a
		}

		_, scoreA := Classify(a)
		_, scoreB := Classify(b)

		if scoreA < scoreB {
			rt.Fatalf("score increased with elapsed time: f(%v)=%v < f(%v)=%v", a, scoreA, b, scoreB)
		}
		for _, s := range []float64{scoreA, scoreB} {
			if s < 0 || s > 1 {
				rt.Fatalf("score %v out of [0,1]", s)
			}
		}
	})
}
