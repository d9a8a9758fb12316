package checkout

import "fmt"

// State tracks a checkout from the moment the operator confirms the sale
// until the invoice is delivered. Done is the only terminal state.
type State string

const (
	StateIdle                State = "idle"
	StateCollectingBuyerInfo State = "collecting_buyer_info"
	StateSubmitting          State = "submitting"
	StateSubmitted           State = "submitted"
	StateSubmitFailed        State = "submit_failed"
	StateRendering           State = "rendering"
	StateDone                State = "done"
)

var allowedTransitions = map[State][]State{
	StateIdle:                {StateCollectingBuyerInfo, StateSubmitting},
	StateCollectingBuyerInfo: {StateSubmitting},
	StateSubmitting:          {StateSubmitted, StateSubmitFailed},
	StateSubmitted:           {StateRendering},
	StateSubmitFailed:        {StateRendering},
	StateRendering:           {StateDone},
	StateDone:                {},
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// IsValid reports whether the value is a known State.
func (s State) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Next validates the transition and returns the target state. A checkout
// that skips buyer info goes straight from idle to submitting; a failed
// submission still proceeds to rendering.
func (s State) Next(target State) (State, error) {
	for _, candidate := range allowedTransitions[s] {
		if candidate == target {
			return target, nil
		}
	}
	return s, fmt.Errorf("illegal checkout transition %s -> %s", s, target)
}
