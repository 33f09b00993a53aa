package store

import (
	"context"
	"path/filepath"
	"sync"

	"romancalc/internal/domain"
)

// SessionsFilename is the file SessionFileStore keeps under its directory.
const SessionsFilename = "sessions.json"

// SessionFileStore persists calculator sessions to a single JSON file.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

func (s *SessionFileStore) path() string { return filepath.Join(s.dir, SessionsFilename) }

// LoadSession retrieves the stored session for id.
func (s *SessionFileStore) LoadSession(ctx context.Context, id domain.SessionID) (domain.Session, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := map[domain.SessionID]domain.Session{}
	if err := readJSON(s.path(), &sessions); err != nil {
		return domain.Session{}, false, err
	}
	sess, ok := sessions[id]
	return sess, ok, nil
}

// SaveSession writes sess, replacing any earlier record with the same ID.
func (s *SessionFileStore) SaveSession(ctx context.Context, sess domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := map[domain.SessionID]domain.Session{}
	if err := readJSON(s.path(), &sessions); err != nil {
		return err
	}
	sessions[sess.ID] = sess
	return writeJSON(s.path(), sessions, 0o600)
}

// DeleteSession removes id. Deleting an unknown session is not an error.
func (s *SessionFileStore) DeleteSession(ctx context.Context, id domain.SessionID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := map[domain.SessionID]domain.Session{}
	if err := readJSON(s.path(), &sessions); err != nil {
		return err
	}
	if _, ok := sessions[id]; !ok {
		return nil
	}
	delete(sessions, id)
	return writeJSON(s.path(), sessions, 0o600)
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
