// Package calc implements the calculator's interaction state machine.
//
// The machine is a pure function over domain.State: Apply takes the current
// state and one action and returns the next state together with the text the
// display should show. Nothing here performs I/O; front-ends own rendering
// and persistence.
//
// Transitions
//
//   - symbol     append to the input, or start a new numeral after an
//     operator or result
//   - clear      back to domain.NewState()
//   - add/sub    hold the input as the left operand (or evaluate a pending
//     operation first when chaining) and wait for the next numeral
//   - calculate  evaluate the pending operation and drop the operator
//
// A result outside the numeral range never escapes as an error: the display
// shows domain.ErrorText and the calculation fields are reset.
//
// Concurrency: State is a value. Callers applying actions to a shared session
// must serialise them.
package calc
