package postfix_test

import (
	"testing"

	"github.com/aretw0/lineviz/pkg/domain"
	"github.com/aretw0/lineviz/pkg/postfix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"Precedence", "A+B*C", "ABC*+"},
		{"Parentheses", "(A+B)*C", "AB+C*"},
		{"Left To Right", "A*B+C", "AB*C+"},
		{"Power Is Left Associative", "A^B^C", "AB^C^"},
		{"Nested Parentheses", "((A))", "A"},
		{"Mixed", "A+B*(C^D-E)", "ABCD^E-*+"},
		{"Digits", "1+2", "12+"},
		{"Whitespace Skipped", " A + B ", "AB+"},
		{"Single Operand", "A", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := postfix.Convert(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_StartRejectsBlank(t *testing.T) {
	c := postfix.New()
	require.NoError(t, c.Start("A+B"))
	c.Step()

	for _, expr := range []string{"", "   ", "\t\n"} {
		err := c.Start(expr)
		assert.ErrorIs(t, err, domain.ErrEmptyExpression)
	}

	// The running conversion is untouched.
	st := c.State()
	assert.Equal(t, domain.PhaseRunning, st.Phase)
	assert.Equal(t, 1, st.Cursor)
	assert.Equal(t, "A", st.Postfix())
}

func TestConverter_StepByStep(t *testing.T) {
	c := postfix.New()
	require.NoError(t, c.Start("A+B*C"))

	type snap struct {
		phase  domain.Phase
		cursor int
		stack  string
		output string
	}
	want := []snap{
		{domain.PhaseRunning, 1, "", "A"},
		{domain.PhaseRunning, 2, "+", "A"},
		{domain.PhaseRunning, 3, "+", "AB"},
		{domain.PhaseRunning, 4, "+*", "AB"},
		{domain.PhaseDraining, 5, "+*", "ABC"},
		{domain.PhaseDraining, 5, "+", "ABC*"},
		{domain.PhaseDone, 5, "", "ABC*+"},
	}

	for i, w := range want {
		out := c.Step()
		assert.True(t, out.Changed, "step %d", i)
		st := c.State()
		assert.Equal(t, w.phase, st.Phase, "step %d", i)
		assert.Equal(t, w.cursor, st.Cursor, "step %d", i)
		assert.Equal(t, w.stack, st.StackString(), "step %d", i)
		assert.Equal(t, w.output, st.Postfix(), "step %d", i)
	}

	res, err := c.Result()
	require.NoError(t, err)
	assert.Equal(t, "ABC*+", res)
}

func TestConverter_Explanations(t *testing.T) {
	c := postfix.New()
	require.NoError(t, c.Start("(A+B)"))

	assert.Equal(t, "Pushed opening parenthesis onto stack", c.Step().Explanation)
	assert.Equal(t, "Added operand: A", c.Step().Explanation)
	assert.Equal(t, "Processed operator: +", c.Step().Explanation)
	assert.Equal(t, "Added operand: B", c.Step().Explanation)
	assert.Equal(t, "Processed closing parenthesis - popped operators until matching '('", c.Step().Explanation)
	last := c.Step()
	assert.Equal(t, domain.PhaseDone, last.Phase)
	assert.Contains(t, last.Explanation, "Final Result: AB+")
}

func TestConverter_UnmatchedCloseParen(t *testing.T) {
	c := postfix.New()
	require.NoError(t, c.Start("A+B)"))
	trace := c.Run()
	require.Len(t, trace, 4)

	last := trace[len(trace)-1]
	assert.Equal(t, domain.PhaseError, last.Phase)
	assert.ErrorIs(t, last.Err, domain.ErrUnmatchedCloseParen)
	require.NotNil(t, last.Token)
	assert.Equal(t, ')', last.Token.Symbol)

	st := c.State()
	assert.Equal(t, 4, st.Cursor, "the ')' is consumed")
	assert.Equal(t, "AB+", st.Postfix(), "partial pops are retained")
	assert.Empty(t, st.Stack)
	assert.NotEmpty(t, st.Err)

	_, err := c.Result()
	assert.ErrorIs(t, err, domain.ErrConversionIncomplete)
}

func TestConverter_UnmatchedOpenParen(t *testing.T) {
	c := postfix.New()
	require.NoError(t, c.Start("(A+B"))
	trace := c.Run()

	last := trace[len(trace)-1]
	assert.Equal(t, domain.PhaseError, last.Phase)
	assert.ErrorIs(t, last.Err, domain.ErrUnmatchedOpenParen)

	st := c.State()
	assert.Equal(t, "AB+", st.Postfix())
	assert.Equal(t, "(", st.StackString(), "the paren stays visible")
	for _, tok := range st.Output {
		assert.False(t, tok.IsParen(), "output never holds parentheses")
	}

	// The draining step before the error emitted '+'.
	assert.Equal(t, domain.PhaseDraining, trace[len(trace)-2].Phase)
}

func TestConverter_InvalidCharacter(t *testing.T) {
	_, err := postfix.Convert("A+$")
	assert.ErrorIs(t, err, domain.ErrInvalidCharacter)

	c := postfix.New()
	require.NoError(t, c.Start("A%B"))
	c.Run()
	assert.Equal(t, domain.PhaseError, c.Phase())
	assert.Equal(t, 1, c.State().Cursor)
}

func TestConverter_TerminalStepIsNoop(t *testing.T) {
	c := postfix.New()

	idle := c.Step()
	assert.False(t, idle.Changed)
	assert.Equal(t, domain.PhaseIdle, idle.Phase)

	require.NoError(t, c.Start("A*B"))
	c.Run()
	before := c.State()

	for i := 0; i < 3; i++ {
		out := c.Step()
		assert.False(t, out.Changed)
		assert.Equal(t, domain.PhaseDone, out.Phase)
	}
	assert.Equal(t, before, c.State())

	require.NoError(t, c.Start("(A"))
	c.Run()
	errored := c.State()
	out := c.Step()
	assert.False(t, out.Changed)
	assert.ErrorIs(t, out.Err, domain.ErrUnmatchedOpenParen)
	assert.Equal(t, errored, c.State())
}

func TestConverter_Reset(t *testing.T) {
	c := postfix.New()
	require.NoError(t, c.Start("A+B"))
	c.Step()
	c.Reset()

	st := c.State()
	assert.Equal(t, domain.PhaseIdle, st.Phase)
	assert.Empty(t, st.Input)
	assert.Empty(t, st.Output)
	assert.Nil(t, c.Err())
}

func TestConverter_CursorNeverDecreases(t *testing.T) {
	c := postfix.New()
	require.NoError(t, c.Start("A*(B+C)-D/E^F"))

	prev := 0
	for !c.Phase().Terminal() {
		c.Step()
		st := c.State()
		assert.GreaterOrEqual(t, st.Cursor, prev)
		prev = st.Cursor
		for _, tok := range st.Stack {
			assert.NotEqual(t, domain.TokenOperand, tok.Kind)
			assert.NotEqual(t, domain.TokenCloseParen, tok.Kind)
		}
	}
	res, err := c.Result()
	require.NoError(t, err)
	assert.Equal(t, "ABC+*DEF^/-", res)
}
