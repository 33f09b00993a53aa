package repl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romancalc/internal/domain"
	"romancalc/internal/services/calculator"
	"romancalc/internal/store"
)

func newSession() *Session {
	return NewSession(calculator.New(store.NewMemoryStore(), nil, nil), "repl")
}

func TestEval_Tokens(t *testing.T) {
	s := newSession()
	ctx := context.Background()

	out, quit, err := s.Eval(ctx, "x + v =")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, "XV", out)

	out, _, err = s.Eval(ctx, "- I V calculate")
	require.NoError(t, err)
	assert.Equal(t, "XI", out)
}

func TestEval_StatePersistsBetweenLines(t *testing.T) {
	s := newSession()
	ctx := context.Background()
	_, _, _ = s.Eval(ctx, "V add")
	_, _, _ = s.Eval(ctx, "I")
	out, _, err := s.Eval(ctx, "add")
	require.NoError(t, err)
	assert.Equal(t, "VI", out)

	out, _, err = s.Eval(ctx, ":show")
	require.NoError(t, err)
	assert.Contains(t, out, "previous=6")
	assert.Contains(t, out, "operator=add")
}

func TestEval_UnknownTokenSkipsLine(t *testing.T) {
	s := newSession()
	ctx := context.Background()
	out, _, err := s.Eval(ctx, "X * V")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown action")

	out, _, _ = s.Eval(ctx, ":show")
	assert.Contains(t, out, "display="+domain.Placeholder)
}

func TestEval_Commands(t *testing.T) {
	s := newSession()
	ctx := context.Background()

	out, quit, err := s.Eval(ctx, ":help")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out, ":show")

	out, _, _ = s.Eval(ctx, ":frobnicate")
	assert.Contains(t, out, "unknown command")

	_, quit, err = s.Eval(ctx, ":quit")
	require.NoError(t, err)
	assert.True(t, quit)

	out, quit, err = s.Eval(ctx, "   ")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Empty(t, out)
}

func TestEval_Clear(t *testing.T) {
	s := newSession()
	ctx := context.Background()
	out, _, err := s.Eval(ctx, "M M AC")
	require.NoError(t, err)
	assert.Equal(t, domain.Placeholder, out)
}
