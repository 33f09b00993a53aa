// Package store provides persistence for calculator sessions.
//
// It contains concrete implementations of domain.SessionStore:
//   - SessionFileStore: one JSON file under the configured home directory
//   - MemoryStore: process-local map, lost on exit
//   - BadgerStore: an embedded badger key-value database
//
// All implementations are safe for concurrent use.
package store
