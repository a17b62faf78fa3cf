package postfix

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/aretw0/lineviz/internal/logging"
	"github.com/aretw0/lineviz/pkg/domain"
)

// StepOutcome is what a single Step call reports back to the caller.
type StepOutcome struct {
	Explanation string
	Phase       domain.Phase

	// Token is the input token consumed by this step, or the operator popped
	// while draining. Nil for no-op steps.
	Token *domain.Token

	// Err is set when the step moved the conversion to PhaseError.
	Err error

	// Changed is false when the step was a no-op (idle or terminal phase).
	Changed bool
}

// Converter is a resumable shunting-yard state machine.
// It consumes at most one input character per Step so the intermediate
// operator stack and output can be shown after every step.
//
// Equal-precedence operators are always popped, which makes '^'
// left-associative: A^B^C converts to AB^C^.
type Converter struct {
	input       []rune
	cursor      int
	stack       []domain.Token
	output      []domain.Token
	phase       domain.Phase
	explanation string
	err         error
	logger      *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets a structured logger used for step tracing at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// New creates an idle converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		phase:  domain.PhaseIdle,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	return c
}

// Start loads a new expression and enters PhaseRunning.
// Blank input is rejected with domain.ErrEmptyExpression and leaves the converter untouched.
// Characters are classified lazily, one per Step.
func (c *Converter) Start(expr string) error {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return domain.ErrEmptyExpression
	}

	c.input = []rune(trimmed)
	c.cursor = 0
	c.stack = nil
	c.output = nil
	c.err = nil
	c.phase = domain.PhaseRunning
	c.explanation = "Conversion started. Click 'Next Step' to proceed."

	c.logger.Debug("conversion started", "input", trimmed)
	return nil
}

// Reset discards the current conversion and returns to PhaseIdle.
func (c *Converter) Reset() {
	c.input = nil
	c.cursor = 0
	c.stack = nil
	c.output = nil
	c.err = nil
	c.phase = domain.PhaseIdle
	c.explanation = ""
}

// Step advances the conversion by exactly one unit of work.
// In idle or terminal phases it is a no-op that reports the current state.
func (c *Converter) Step() StepOutcome {
	var tok *domain.Token

	switch c.phase {
	case domain.PhaseRunning:
		tok = c.consume()
	case domain.PhaseDraining:
		tok = c.drain()
	default:
		return StepOutcome{
			Explanation: c.explanation,
			Phase:       c.phase,
			Err:         c.err,
		}
	}

	c.logger.Debug("conversion step",
		"phase", c.phase,
		"cursor", c.cursor,
		"stack", domain.JoinTokens(c.stack),
		"output", domain.JoinTokens(c.output),
	)

	return StepOutcome{
		Explanation: c.explanation,
		Phase:       c.phase,
		Token:       tok,
		Err:         c.err,
		Changed:     true,
	}
}

// consume processes input[cursor]. Only called in PhaseRunning.
func (c *Converter) consume() *domain.Token {
	r := c.input[c.cursor]

	tok, ok := Classify(r)
	if !ok {
		if unicode.IsSpace(r) {
			c.explanation = "Skipped whitespace"
			c.advance()
			return nil
		}
		// The cursor stays on the offending character so it can be highlighted.
		c.fail(fmt.Errorf("%w %q at position %d", domain.ErrInvalidCharacter, r, c.cursor),
			fmt.Sprintf("Error: invalid character '%c'", r))
		return nil
	}

	switch tok.Kind {
	case domain.TokenOperand:
		c.output = append(c.output, tok)
		c.explanation = "Added operand: " + tok.String()

	case domain.TokenOpenParen:
		c.push(tok)
		c.explanation = "Pushed opening parenthesis onto stack"

	case domain.TokenCloseParen:
		for len(c.stack) > 0 && c.top().Kind != domain.TokenOpenParen {
			c.output = append(c.output, c.pop())
		}
		if len(c.stack) == 0 {
			// The ')' is consumed and the partial pops are kept for display.
			c.cursor++
			c.fail(fmt.Errorf("%w at position %d", domain.ErrUnmatchedCloseParen, c.cursor-1),
				"Error: Unmatched closing parenthesis")
			return &tok
		}
		c.pop()
		c.explanation = "Processed closing parenthesis - popped operators until matching '('"

	case domain.TokenOperator:
		for len(c.stack) > 0 {
			top := c.top()
			if top.Kind != domain.TokenOperator || top.Precedence < tok.Precedence {
				break
			}
			c.output = append(c.output, c.pop())
		}
		c.push(tok)
		c.explanation = "Processed operator: " + tok.String()
	}

	c.advance()
	return &tok
}

// drain pops one entry of the operator stack. Only called in PhaseDraining.
func (c *Converter) drain() *domain.Token {
	if len(c.stack) == 0 {
		c.finish()
		return nil
	}

	top := c.top()
	if top.IsParen() {
		// The paren stays on the stack so the imbalance is visible.
		c.fail(domain.ErrUnmatchedOpenParen, "Found unmatched parenthesis - invalid expression")
		return &top
	}

	op := c.pop()
	c.output = append(c.output, op)
	c.explanation = "Popping remaining operator: " + op.String()

	if len(c.stack) == 0 {
		c.finish()
		c.explanation = "Popping remaining operator: " + op.String() + ". Final Result: " + domain.JoinTokens(c.output)
	}
	return &op
}

func (c *Converter) advance() {
	c.cursor++
	if c.cursor == len(c.input) {
		c.phase = domain.PhaseDraining
	}
}

func (c *Converter) finish() {
	c.phase = domain.PhaseDone
	c.explanation = "Conversion complete. Final Result: " + domain.JoinTokens(c.output)
}

func (c *Converter) fail(err error, explanation string) {
	c.err = err
	c.phase = domain.PhaseError
	c.explanation = explanation
	c.logger.Debug("conversion failed", "err", err, "cursor", c.cursor)
}

func (c *Converter) push(tok domain.Token) {
	c.stack = append(c.stack, tok)
}

func (c *Converter) pop() domain.Token {
	tok := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return tok
}

func (c *Converter) top() domain.Token {
	return c.stack[len(c.stack)-1]
}

// Phase returns the current phase.
func (c *Converter) Phase() domain.Phase {
	return c.phase
}

// Err returns the error that terminated the conversion, if any.
func (c *Converter) Err() error {
	return c.err
}

// Result returns the postfix expression. It is only valid in PhaseDone.
func (c *Converter) Result() (string, error) {
	if c.phase != domain.PhaseDone {
		return "", domain.ErrConversionIncomplete
	}
	return domain.JoinTokens(c.output), nil
}

// State returns a snapshot of the conversion. The slices are copies.
func (c *Converter) State() domain.ConversionState {
	s := domain.ConversionState{
		Input:       string(c.input),
		Cursor:      c.cursor,
		Stack:       append([]domain.Token{}, c.stack...),
		Output:      append([]domain.Token{}, c.output...),
		Phase:       c.phase,
		Explanation: c.explanation,
	}
	if c.err != nil {
		s.Err = c.err.Error()
	}
	return s
}

// Run steps the conversion until it reaches a terminal phase and returns
// every outcome in order. Running an idle converter returns nil.
func (c *Converter) Run() []StepOutcome {
	var trace []StepOutcome
	for c.phase == domain.PhaseRunning || c.phase == domain.PhaseDraining {
		trace = append(trace, c.Step())
	}
	return trace
}

// Convert runs a full conversion of expr and returns the postfix string.
// The error is the one that stopped the conversion, if any.
func Convert(expr string) (string, error) {
	c := New()
	if err := c.Start(expr); err != nil {
		return "", err
	}
	c.Run()
	if c.err != nil {
		return domain.JoinTokens(c.output), c.err
	}
	return c.Result()
}
