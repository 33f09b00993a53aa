package types

// SessionID identifies one calculator session.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// DefaultSessionID is used by the CLI when no --session is given.
const DefaultSessionID SessionID = "default"
