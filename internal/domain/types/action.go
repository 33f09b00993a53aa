package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned by ParseAction for tokens that name no action.
var ErrUnknownAction = errors.New("unknown action")

// Operator is the pending arithmetic operation.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
)

// String returns the action tag of the operator ("" for OpNone).
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	}
	return ""
}

// MarshalText encodes the operator by its tag.
func (o Operator) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText decodes a tag written by MarshalText.
func (o *Operator) UnmarshalText(b []byte) error {
	switch string(b) {
	case "":
		*o = OpNone
	case "add":
		*o = OpAdd
	case "subtract":
		*o = OpSubtract
	default:
		return fmt.Errorf("unknown operator %q", string(b))
	}
	return nil
}

// ActionKind enumerates the inputs the calculator accepts.
type ActionKind int

const (
	ActionSymbol ActionKind = iota
	ActionClear
	ActionAdd
	ActionSubtract
	ActionCalculate
)

// Action is one discrete input event.
// Symbol is only meaningful when Kind is ActionSymbol.
type Action struct {
	Kind   ActionKind
	Symbol Symbol
}

// Press returns the action for entering s.
func Press(s Symbol) Action { return Action{Kind: ActionSymbol, Symbol: s} }

// Clear, Add, Subtract and Calculate are the non-symbol actions.
var (
	Clear     = Action{Kind: ActionClear}
	Add       = Action{Kind: ActionAdd}
	Subtract  = Action{Kind: ActionSubtract}
	Calculate = Action{Kind: ActionCalculate}
)

// Operator returns the operator an ActionAdd/ActionSubtract selects.
func (a Action) Operator() Operator {
	switch a.Kind {
	case ActionAdd:
		return OpAdd
	case ActionSubtract:
		return OpSubtract
	}
	return OpNone
}

// String returns the canonical token for a, accepted by ParseAction.
func (a Action) String() string {
	switch a.Kind {
	case ActionSymbol:
		return a.Symbol.String()
	case ActionClear:
		return "clear"
	case ActionAdd:
		return "add"
	case ActionSubtract:
		return "subtract"
	case ActionCalculate:
		return "calculate"
	}
	return fmt.Sprintf("action(%d)", int(a.Kind))
}

// ParseAction reads a single token: a numeral letter in either case, one of
// the tags clear/add/subtract/calculate, or a keypad alias (AC, +, -, =).
func ParseAction(token string) (Action, error) {
	t := strings.TrimSpace(token)
	if r := []rune(t); len(r) == 1 {
		if s, ok := ParseSymbol(r[0]); ok {
			return Press(s), nil
		}
	}
	switch strings.ToLower(t) {
	case "clear", "ac":
		return Clear, nil
	case "add", "+":
		return Add, nil
	case "subtract", "-", "sub":
		return Subtract, nil
	case "calculate", "=", "equals":
		return Calculate, nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, token)
}
