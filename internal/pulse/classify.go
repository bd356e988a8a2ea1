// Package pulse turns raw workspace file timestamps into a flow-state
// reading: a coarse classification, a focus score, a touch histogram, and
// an idle verdict. Everything here is a pure function of its inputs —
// nothing is cached between invocations.
package pulse

// FlowState is the coarse classification of how recently the workspace
// was edited.
type FlowState string

const (
	StateFlow   FlowState = "FLOW"   // actively editing
	StateSteady FlowState = "STEADY" // working, but not in the zone
	StateRest   FlowState = "REST"   // stepped away
)

const (
	// flowCeilingMinutes and steadyCeilingMinutes are the fixed state
	// boundaries. Only the idle break threshold is configurable; the two
	// are independent.
	flowCeilingMinutes   = 5.0
	steadyCeilingMinutes = 30.0

	// focusDecayMinutes controls how fast the focus score falls off.
	focusDecayMinutes = 10.0
)

// Classify maps minutes-since-last-edit to a flow state and a focus score
// in [0,1]. The score is 1.0 at zero minutes and decays linearly to 0.
func Classify(minutesSince float64) (FlowState, float64) {
	if minutesSince < 0 {
		minutesSince = 0
	}

	score := 1.0 - minutesSince/focusDecayMinutes
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	switch {
	case minutesSince < flowCeilingMinutes:
		return StateFlow, score
	case minutesSince <= steadyCeilingMinutes:
		return StateSteady, score
	default:
		return StateRest, score
	}
}
