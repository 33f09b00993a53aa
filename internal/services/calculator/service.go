package calculator

import (
	"context"
	"errors"
	"time"

	"romancalc/internal/calc"
	"romancalc/internal/domain"
	"romancalc/internal/logger"
	"romancalc/internal/observability"
	"romancalc/internal/roman"
)

// Service runs the calculator state machine against persisted sessions.
type Service struct {
	store   domain.SessionStore
	metrics *observability.CalculatorMetrics
	log     *logger.Logger
	now     func() time.Time
	locks   sessionLocks
}

// New returns a Service over store. metrics and log may be nil.
func New(store domain.SessionStore, metrics *observability.CalculatorMetrics, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		store:   store,
		metrics: metrics,
		log:     log.WithComponent("calculator"),
		now:     time.Now,
	}
}

// Press applies one action to the session id and returns the updated session.
func (s *Service) Press(ctx context.Context, id domain.SessionID, action domain.Action) (domain.Session, error) {
	return s.PressAll(ctx, id, []domain.Action{action})
}

// PressAll applies actions in order under a single load and save.
func (s *Service) PressAll(ctx context.Context, id domain.SessionID, actions []domain.Action) (domain.Session, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}

	log := s.log.WithSession(id.String())
	for _, a := range actions {
		var ev calc.Evaluation
		sess.State, ev = calc.Step(sess.State, a)
		s.metrics.RecordAction(a, ev)
		log.Debug("action applied", "action", a.String(), "display", sess.State.Display)

		switch {
		case ev.Err == nil:
		case errors.Is(ev.Err, roman.ErrOutOfRange):
			log.Info("calculation out of range",
				"operator", ev.Operator.String(), "left", ev.Left, "right", ev.Right, "result", ev.Result)
		default:
			log.Warn("stored input rejected, session reset", "error", ev.Err)
		}
	}

	sess.UpdatedUTC = s.now().UTC().Unix()
	if err := s.store.SaveSession(ctx, sess); err != nil {
		s.metrics.RecordStoreError("save")
		return domain.Session{}, err
	}
	return sess, nil
}

// Get returns the session id without modifying it.
func (s *Service) Get(ctx context.Context, id domain.SessionID) (domain.Session, error) {
	return s.load(ctx, id)
}

// Reset applies the clear action.
func (s *Service) Reset(ctx context.Context, id domain.SessionID) (domain.Session, error) {
	return s.Press(ctx, id, domain.Clear)
}

// Delete forgets the session id.
func (s *Service) Delete(ctx context.Context, id domain.SessionID) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.store.DeleteSession(ctx, id); err != nil {
		s.metrics.RecordStoreError("delete")
		return err
	}
	return nil
}

func (s *Service) load(ctx context.Context, id domain.SessionID) (domain.Session, error) {
	sess, ok, err := s.store.LoadSession(ctx, id)
	if err != nil {
		s.metrics.RecordStoreError("load")
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{ID: id, State: domain.NewState()}, nil
	}
	return sess, nil
}

// Compile-time assertion that Service implements domain.CalculatorService.
var _ domain.CalculatorService = (*Service)(nil)
