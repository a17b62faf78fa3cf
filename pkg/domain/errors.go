package domain

import "errors"

// ErrOverflow is returned when an insertion is attempted on a full container.
var ErrOverflow = errors.New("overflow")

// ErrUnderflow is returned when a read or removal is attempted on an empty container.
var ErrUnderflow = errors.New("underflow")

// ErrCorruptState is returned by Validate when index state and the size counter disagree.
var ErrCorruptState = errors.New("corrupt container state")

// ErrEmptyExpression is returned when a conversion is started with blank input.
var ErrEmptyExpression = errors.New("empty expression")

// ErrUnmatchedCloseParen is raised when ')' is consumed without a matching '('.
var ErrUnmatchedCloseParen = errors.New("unmatched closing parenthesis")

// ErrUnmatchedOpenParen is raised when a '(' is still on the operator stack at drain time.
var ErrUnmatchedOpenParen = errors.New("unmatched opening parenthesis")

// ErrInvalidCharacter is raised when the input holds a character that is not
// an operand, a parenthesis, an operator or whitespace.
var ErrInvalidCharacter = errors.New("invalid character")

// ErrConversionIncomplete is returned when the postfix result is requested before the conversion is done.
var ErrConversionIncomplete = errors.New("conversion not complete")

// ErrUnknownTarget is returned when a request names a visualizer that does not exist.
var ErrUnknownTarget = errors.New("unknown target")

// ErrUnknownAction is returned when a request names an action the target does not support.
var ErrUnknownAction = errors.New("unknown action")

// ErrMissingValue is returned when an insertion request carries no value.
var ErrMissingValue = errors.New("missing value")

// ErrSessionNotFound is returned when a session ID cannot be found in the manager.
var ErrSessionNotFound = errors.New("session not found")

// IsUserError reports whether err is a recoverable condition caused by the
// requested operation (as opposed to a routing or internal failure).
func IsUserError(err error) bool {
	return errors.Is(err, ErrOverflow) ||
		errors.Is(err, ErrUnderflow) ||
		errors.Is(err, ErrEmptyExpression) ||
		errors.Is(err, ErrUnmatchedCloseParen) ||
		errors.Is(err, ErrUnmatchedOpenParen) ||
		errors.Is(err, ErrInvalidCharacter) ||
		errors.Is(err, ErrConversionIncomplete)
}
