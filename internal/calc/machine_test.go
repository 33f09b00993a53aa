package calc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romancalc/internal/calc"
	"romancalc/internal/domain"
	"romancalc/internal/roman"
)

// run applies tokens from the initial state and returns the final state and display.
func run(t *testing.T, tokens ...string) (domain.State, string) {
	t.Helper()
	actions, err := domain.ParseActions(tokens)
	require.NoError(t, err)
	s, display := domain.NewState(), domain.Placeholder
	for _, a := range actions {
		s, display = calc.Apply(s, a)
	}
	return s, display
}

func TestApply_SymbolsAppend(t *testing.T) {
	s, display := run(t, "M", "C", "M", "X", "C", "I", "V")
	assert.Equal(t, "MCMXCIV", s.Input)
	assert.Equal(t, "MCMXCIV", display)
	assert.False(t, s.AwaitingInput)
	assert.False(t, s.HasPrevious)
}

func TestApply_AddThenEquals(t *testing.T) {
	s, display := run(t, "X", "add", "V", "calculate")
	assert.Equal(t, "XV", s.Input)
	assert.Equal(t, "XV", display)
	assert.Equal(t, 15, s.Previous)
	assert.True(t, s.HasPrevious)
	assert.Equal(t, domain.OpNone, s.Operator)
	assert.True(t, s.AwaitingInput)
}

func TestApply_SubtractOutOfRangeResets(t *testing.T) {
	s, display := run(t, "I", "subtract", "V", "calculate")
	assert.Equal(t, domain.ErrorText, display)
	assert.Equal(t, "", s.Input)
	assert.Equal(t, 0, s.Previous)
	assert.False(t, s.HasPrevious)
	assert.Equal(t, domain.OpNone, s.Operator)
}

func TestApply_OverflowResets(t *testing.T) {
	s, display := run(t, "M", "M", "M", "+", "M", "=")
	assert.Equal(t, domain.ErrorText, display)
	assert.Equal(t, "", s.Input)
	assert.Equal(t, domain.OpNone, s.Operator)
}

func TestApply_ChainedOperator(t *testing.T) {
	s, _ := run(t, "V", "add")
	assert.Equal(t, 5, s.Previous)
	assert.Equal(t, domain.OpAdd, s.Operator)
	assert.True(t, s.AwaitingInput)

	s, display := run(t, "V", "add", "I", "add")
	assert.Equal(t, 6, s.Previous)
	assert.Equal(t, "VI", s.Input)
	assert.Equal(t, "VI", display)
	assert.Equal(t, domain.OpAdd, s.Operator)
	assert.True(t, s.AwaitingInput)

	s, display = run(t, "V", "add", "I", "add", "X", "subtract", "I", "I", "=")
	assert.Equal(t, 14, s.Previous)
	assert.Equal(t, "XIV", display)
}

func TestApply_NextSymbolStartsNewNumeral(t *testing.T) {
	s, display := run(t, "X", "+", "V", "=", "I")
	assert.Equal(t, "I", s.Input)
	assert.Equal(t, "I", display)
	assert.False(t, s.AwaitingInput)
}

func TestApply_OperatorWithoutInputIsNoop(t *testing.T) {
	s, display := run(t, "add")
	assert.Equal(t, domain.NewState(), s)
	assert.Equal(t, domain.Placeholder, display)
}

func TestApply_EqualsWithoutOperatorIsNoop(t *testing.T) {
	s, display := run(t, "X", "X", "=")
	assert.Equal(t, "XX", s.Input)
	assert.Equal(t, "XX", display)
	assert.False(t, s.AwaitingInput)
}

func TestApply_EqualsRepeatsInputAsOperand(t *testing.T) {
	// With no second numeral the held input is used as both operands.
	s, display := run(t, "X", "+", "=")
	assert.Equal(t, "XX", display)
	assert.Equal(t, 20, s.Previous)
}

func TestApply_OperatorAfterErrorStartsFresh(t *testing.T) {
	s, display := run(t, "I", "-", "V", "-")
	// The chained subtract overflowed, then the new operator was still selected.
	assert.Equal(t, domain.ErrorText, display)
	assert.Equal(t, domain.OpSubtract, s.Operator)
	assert.False(t, s.HasPrevious)

	s, display = run(t, "I", "-", "V", "-", "X", "+")
	assert.Equal(t, 10, s.Previous)
	assert.True(t, s.HasPrevious)
	assert.Equal(t, domain.OpAdd, s.Operator)
	assert.Equal(t, "X", display)
}

func TestApply_ClearFromAnyState(t *testing.T) {
	sequences := [][]string{
		{"X"},
		{"X", "+"},
		{"X", "+", "V"},
		{"X", "+", "V", "="},
		{"I", "-", "V", "="},
	}
	for _, seq := range sequences {
		s, display := run(t, append(seq, "clear")...)
		assert.Equal(t, domain.NewState(), s, "after %v", seq)
		assert.Equal(t, domain.Placeholder, display, "after %v", seq)
	}
}

func TestApply_LenientInput(t *testing.T) {
	s, display := run(t, "I", "I", "I", "I", "+", "I", "=")
	assert.Equal(t, "V", display)
	assert.Equal(t, 5, s.Previous)
}

func TestStep_ReportsEvaluation(t *testing.T) {
	s, _ := run(t, "X", "subtract", "I", "V")

	next, ev := calc.Step(s, domain.Calculate)
	require.True(t, ev.Ran)
	assert.NoError(t, ev.Err)
	assert.Equal(t, domain.OpSubtract, ev.Operator)
	assert.Equal(t, 10, ev.Left)
	assert.Equal(t, 4, ev.Right)
	assert.Equal(t, 6, ev.Result)
	assert.Equal(t, "VI", next.Display)

	_, ev = calc.Step(next, domain.Press(domain.SymbolX))
	assert.False(t, ev.Ran)
}

func TestStep_ReportsOutOfRange(t *testing.T) {
	s, _ := run(t, "V", "-", "V")
	_, ev := calc.Step(s, domain.Calculate)
	require.True(t, ev.Ran)
	assert.Equal(t, 0, ev.Result)
	assert.True(t, errors.Is(ev.Err, roman.ErrOutOfRange))
}

func TestStep_CorruptInputResets(t *testing.T) {
	s := domain.State{Input: "XQ", Previous: 3, HasPrevious: true, Operator: domain.OpAdd, Display: "XQ"}
	next, ev := calc.Step(s, domain.Calculate)
	assert.True(t, errors.Is(ev.Err, roman.ErrInvalidSymbol))
	assert.Equal(t, domain.ErrorText, next.Display)
	assert.Equal(t, "", next.Input)
	assert.Equal(t, domain.OpNone, next.Operator)
}

func TestApply_InvalidSymbolIgnored(t *testing.T) {
	s := domain.NewState()
	next, display := calc.Apply(s, domain.Action{Kind: domain.ActionSymbol, Symbol: 'Q'})
	assert.Equal(t, s, next)
	assert.Equal(t, domain.Placeholder, display)
}
