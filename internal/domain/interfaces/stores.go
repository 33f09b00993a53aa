package interfaces

import (
	"context"

	domaintypes "romancalc/internal/domain/types"
)

// SessionStore persists calculator sessions.
type SessionStore interface {
	// LoadSession returns ok=false, err=nil when id has never been saved.
	LoadSession(ctx context.Context, id domaintypes.SessionID) (sess domaintypes.Session, ok bool, err error)
	SaveSession(ctx context.Context, sess domaintypes.Session) error
	DeleteSession(ctx context.Context, id domaintypes.SessionID) error
}
