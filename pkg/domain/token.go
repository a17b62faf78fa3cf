package domain

import "strings"

// TokenKind classifies a single input character.
type TokenKind int

const (
	TokenOperand TokenKind = iota
	TokenOpenParen
	TokenCloseParen
	TokenOperator
)

func (k TokenKind) String() string {
	switch k {
	case TokenOperand:
		return "operand"
	case TokenOpenParen:
		return "open_paren"
	case TokenCloseParen:
		return "close_paren"
	case TokenOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// Token is a classified input character. Precedence is only meaningful for operators.
type Token struct {
	Symbol     rune      `json:"symbol"`
	Kind       TokenKind `json:"kind"`
	Precedence int       `json:"precedence,omitempty"`
}

// String returns the symbol as a one-character string.
func (t Token) String() string {
	return string(t.Symbol)
}

// IsParen reports whether the token is '(' or ')'.
func (t Token) IsParen() bool {
	return t.Kind == TokenOpenParen || t.Kind == TokenCloseParen
}

// JoinTokens concatenates token symbols.
func JoinTokens(tokens []Token) string {
	var b strings.Builder
	b.Grow(len(tokens))
	for _, t := range tokens {
		b.WriteRune(t.Symbol)
	}
	return b.String()
}
