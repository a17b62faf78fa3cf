package postfix

import (
	"unicode"

	"github.com/aretw0/lineviz/pkg/domain"
)

// IsOperator reports whether r is one of the supported binary operators.
func IsOperator(r rune) bool {
	return r == '+' || r == '-' || r == '*' || r == '/' || r == '^'
}

// Precedence returns the binding rank of an operator: '^' binds tightest.
// Callers must check IsOperator first; any other symbol returns 0.
func Precedence(op rune) int {
	switch op {
	case '^':
		return 3
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}

// Classify turns an input character into a token.
// It returns false for whitespace and for characters outside the grammar.
func Classify(r rune) (domain.Token, bool) {
	switch {
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return domain.Token{Symbol: r, Kind: domain.TokenOperand}, true
	case r == '(':
		return domain.Token{Symbol: r, Kind: domain.TokenOpenParen}, true
	case r == ')':
		return domain.Token{Symbol: r, Kind: domain.TokenCloseParen}, true
	case IsOperator(r):
		return domain.Token{Symbol: r, Kind: domain.TokenOperator, Precedence: Precedence(r)}, true
	default:
		return domain.Token{}, false
	}
}
