package domain

import (
	interfaces "romancalc/internal/domain/interfaces"
	types "romancalc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionID  = types.SessionID
	Symbol     = types.Symbol
	Operator   = types.Operator
	ActionKind = types.ActionKind
	Action     = types.Action
	State      = types.State
	Session    = types.Session
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SessionStore      = interfaces.SessionStore
	CalculatorService = interfaces.CalculatorService
)

const (
	DefaultSessionID = types.DefaultSessionID
	Placeholder      = types.Placeholder
	ErrorText        = types.ErrorText

	SymbolI = types.SymbolI
	SymbolV = types.SymbolV
	SymbolX = types.SymbolX
	SymbolL = types.SymbolL
	SymbolC = types.SymbolC
	SymbolD = types.SymbolD
	SymbolM = types.SymbolM

	OpNone     = types.OpNone
	OpAdd      = types.OpAdd
	OpSubtract = types.OpSubtract

	ActionSymbol    = types.ActionSymbol
	ActionClear     = types.ActionClear
	ActionAdd       = types.ActionAdd
	ActionSubtract  = types.ActionSubtract
	ActionCalculate = types.ActionCalculate
)

var (
	ErrUnknownAction = types.ErrUnknownAction

	Symbols = types.Symbols

	Clear     = types.Clear
	Add       = types.Add
	Subtract  = types.Subtract
	Calculate = types.Calculate
)

// NewState returns the initial calculator state.
func NewState() State { return types.NewState() }

// Press returns the action for entering s.
func Press(s Symbol) Action { return types.Press(s) }

// ParseSymbol maps r (either case) to a Symbol.
func ParseSymbol(r rune) (Symbol, bool) { return types.ParseSymbol(r) }

// ParseAction reads a single action token.
func ParseAction(token string) (Action, error) { return types.ParseAction(token) }

// ParseActions parses every token, stopping at the first unknown one.
func ParseActions(tokens []string) ([]Action, error) {
	out := make([]Action, 0, len(tokens))
	for _, t := range tokens {
		a, err := types.ParseAction(t)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
