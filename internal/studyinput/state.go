package studyinput

import "strings"

// SubmitState describes the submit button.
type SubmitState int

const (
	// IdleInvalid means the goal is empty or whitespace only.
	IdleInvalid SubmitState = iota
	// IdleValid means the goal can be submitted.
	IdleValid
	// Busy means the caller reported an in-flight generation.
	Busy
)

func (s SubmitState) String() string {
	switch s {
	case IdleInvalid:
		return "idle-invalid"
	case IdleValid:
		return "idle-valid"
	case Busy:
		return "busy"
	default:
		return "unknown"
	}
}

// submitState is the whole state machine: loading wins over goal content.
func submitState(goal string, loading bool) SubmitState {
	if loading {
		return Busy
	}
	if strings.TrimSpace(goal) == "" {
		return IdleInvalid
	}
	return IdleValid
}
