package calc

import (
	"romancalc/internal/domain"
	"romancalc/internal/roman"
)

// Evaluation reports a calculation performed during a transition.
type Evaluation struct {
	// Ran is false when the action did not evaluate anything.
	Ran      bool
	Operator domain.Operator
	Left     int
	Right    int
	Result   int
	// Err is roman.ErrOutOfRange (or a ToInt error for a corrupt stored
	// input) when the result could not be shown and the state was reset.
	Err error
}

// Apply returns the state after a and the text the display should show.
func Apply(s domain.State, a domain.Action) (domain.State, string) {
	next, _ := Step(s, a)
	return next, next.Display
}

// Step is Apply with a report of any calculation that ran.
func Step(s domain.State, a domain.Action) (domain.State, Evaluation) {
	switch a.Kind {
	case domain.ActionSymbol:
		if !a.Symbol.Valid() {
			return s, Evaluation{}
		}
		if s.AwaitingInput {
			s.Input = a.Symbol.String()
			s.AwaitingInput = false
		} else {
			s.Input += a.Symbol.String()
		}
		s.Display = s.Input
		return s, Evaluation{}

	case domain.ActionClear:
		return domain.NewState(), Evaluation{}

	case domain.ActionAdd, domain.ActionSubtract:
		return selectOperator(s, a.Operator())

	case domain.ActionCalculate:
		next, ev := calculate(s)
		next.Operator = domain.OpNone
		return next, ev
	}
	return s, Evaluation{}
}

// selectOperator holds the input as the left operand, or evaluates the
// pending operation first when one is already waiting on a held operand.
func selectOperator(s domain.State, op domain.Operator) (domain.State, Evaluation) {
	if s.Input == "" {
		return s, Evaluation{}
	}
	var ev Evaluation
	if s.Operator != domain.OpNone && s.HasPrevious {
		s, ev = calculate(s)
	} else {
		n, err := roman.ToInt(s.Input)
		if err != nil {
			return reset(), Evaluation{Err: err}
		}
		s.Previous = n
		s.HasPrevious = true
	}
	s.Operator = op
	s.AwaitingInput = true
	return s, ev
}

// calculate applies the pending operator to the held operand and the input.
// A missing left operand counts as zero.
func calculate(s domain.State) (domain.State, Evaluation) {
	if s.Operator == domain.OpNone || s.Input == "" {
		return s, Evaluation{}
	}
	ev := Evaluation{Ran: true, Operator: s.Operator, Left: s.Previous}

	right, err := roman.ToInt(s.Input)
	if err != nil {
		ev.Err = err
		return reset(), ev
	}
	ev.Right = right

	switch s.Operator {
	case domain.OpAdd:
		ev.Result = s.Previous + right
	case domain.OpSubtract:
		ev.Result = s.Previous - right
	default:
		return s, Evaluation{}
	}

	numeral, err := roman.FromInt(ev.Result)
	if err != nil {
		ev.Err = err
		return reset(), ev
	}
	s.Input = numeral
	s.Previous = ev.Result
	s.HasPrevious = true
	s.AwaitingInput = true
	s.Display = numeral
	return s, ev
}

// reset is the state after a failed calculation: everything cleared, the
// error text on the display, and the next symbol starting a new numeral.
func reset() domain.State {
	return domain.State{AwaitingInput: true, Display: domain.ErrorText}
}
