package engine

// Outcome is the result of handling one input event
type Outcome uint8

const (
	OutcomeNone    Outcome = iota // event ignored, nothing to redraw
	OutcomeChanged                // state mutated, redraw scheduled
	OutcomeRefused                // recognized step blocked by a bound
	OutcomeExit                   // session must stop
)

var outcomeNames = [...]string{"None", "Changed", "Refused", "Exit"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "Unknown"
}
