package domain

// Phase is the lifecycle stage of an infix-to-postfix conversion.
type Phase string

const (
	PhaseIdle     Phase = "idle"     // No expression loaded
	PhaseRunning  Phase = "running"  // Consuming input characters
	PhaseDraining Phase = "draining" // Input consumed, popping the operator stack
	PhaseDone     Phase = "done"     // Output holds the full postfix expression
	PhaseError    Phase = "error"    // Malformed input; terminal
)

// Terminal reports whether no further step can change the conversion.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseError
}

// ConversionState is a read-only snapshot of a conversion, suitable for rendering.
type ConversionState struct {
	Input       string  `json:"input"`
	Cursor      int     `json:"cursor"`
	Stack       []Token `json:"stack"`
	Output      []Token `json:"output"`
	Phase       Phase   `json:"phase"`
	Explanation string  `json:"explanation"`

	// Err holds the message of the error that moved the conversion to PhaseError.
	Err string `json:"error,omitempty"`
}

// Postfix returns the output tokens as a string.
func (s ConversionState) Postfix() string {
	return JoinTokens(s.Output)
}

// StackString returns the operator stack, bottom first, as a string.
func (s ConversionState) StackString() string {
	return JoinTokens(s.Stack)
}
