package types

import (
	"fmt"
	"strconv"
)

// Placeholder is shown when there is nothing to display.
const Placeholder = "0"

// ErrorText is shown after a calculation falls outside the numeral range.
const ErrorText = "Error/Too Big"

// State is the complete calculator state for one session.
//
// HasPrevious marks whether Previous holds an operand; zero is never used as
// a "no value" marker.
type State struct {
	Input         string   `json:"input"`
	Previous      int      `json:"previous"`
	HasPrevious   bool     `json:"has_previous"`
	Operator      Operator `json:"operator"`
	AwaitingInput bool     `json:"awaiting_input"`
	Display       string   `json:"display"`
}

// NewState returns the state a calculator starts in and returns to on clear.
func NewState() State { return State{Display: Placeholder} }

// Session is a persisted calculator state.
type Session struct {
	ID         SessionID `json:"id"`
	State      State     `json:"state"`
	UpdatedUTC int64     `json:"updated_utc"`
}

// String summarises s on one line for terminals and logs.
func (s State) String() string {
	prev := "-"
	if s.HasPrevious {
		prev = strconv.Itoa(s.Previous)
	}
	op := s.Operator.String()
	if op == "" {
		op = "-"
	}
	input := s.Input
	if input == "" {
		input = "-"
	}
	return fmt.Sprintf("display=%s input=%s previous=%s operator=%s awaiting=%t",
		s.Display, input, prev, op, s.AwaitingInput)
}
