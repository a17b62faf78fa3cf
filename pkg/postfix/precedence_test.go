package postfix

import (
	"testing"

	"github.com/aretw0/lineviz/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrecedence(t *testing.T) {
	tests := []struct {
		op   rune
		want int
	}{
		{'^', 3},
		{'*', 2},
		{'/', 2},
		{'+', 1},
		{'-', 1},
		{'%', 0},
		{'A', 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			assert.Equal(t, tt.want, Precedence(tt.op))
			assert.Equal(t, tt.want > 0, IsOperator(tt.op))
		})
	}
}

func TestClassify(t *testing.T) {
	tok, ok := Classify('x')
	assert.True(t, ok)
	assert.Equal(t, domain.TokenOperand, tok.Kind)

	tok, ok = Classify('7')
	assert.True(t, ok)
	assert.Equal(t, domain.TokenOperand, tok.Kind)

	tok, ok = Classify('(')
	assert.True(t, ok)
	assert.Equal(t, domain.TokenOpenParen, tok.Kind)

	tok, ok = Classify(')')
	assert.True(t, ok)
	assert.Equal(t, domain.TokenCloseParen, tok.Kind)

	tok, ok = Classify('*')
	assert.True(t, ok)
	assert.Equal(t, domain.TokenOperator, tok.Kind)
	assert.Equal(t, 2, tok.Precedence)

	_, ok = Classify(' ')
	assert.False(t, ok)
	_, ok = Classify('$')
	assert.False(t, ok)
}
