// Package calculator applies actions to stored calculator sessions.
//
// Each call loads the session's state from a domain.SessionStore (a missing
// session starts from domain.NewState()), runs the calc state machine, and
// saves the result. Actions on one session are serialised; different
// sessions proceed independently.
package calculator
