package calculator

import (
	"sync"

	"romancalc/internal/domain"
)

// sessionLocks hands out one mutex per session, dropping it once unused.
type sessionLocks struct {
	mu sync.Mutex
	m  map[domain.SessionID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// lock blocks until id is free and returns the matching unlock.
func (l *sessionLocks) lock(id domain.SessionID) (unlock func()) {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[domain.SessionID]*lockEntry)
	}
	e := l.m[id]
	if e == nil {
		e = &lockEntry{}
		l.m[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.m, id)
		}
		l.mu.Unlock()
	}
}
