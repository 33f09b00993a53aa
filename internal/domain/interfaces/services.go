package interfaces

import (
	"context"

	domaintypes "romancalc/internal/domain/types"
)

// CalculatorService applies actions to stored calculator sessions.
type CalculatorService interface {
	Press(ctx context.Context, id domaintypes.SessionID, action domaintypes.Action) (domaintypes.Session, error)
	PressAll(ctx context.Context, id domaintypes.SessionID, actions []domaintypes.Action) (domaintypes.Session, error)
	Get(ctx context.Context, id domaintypes.SessionID) (domaintypes.Session, error)
	Reset(ctx context.Context, id domaintypes.SessionID) (domaintypes.Session, error)
	Delete(ctx context.Context, id domaintypes.SessionID) error
}
