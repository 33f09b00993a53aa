// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (actions, calculator state, sessions) and contracts
// (interfaces) only. The types and interfaces subpackages hold the
// definitions; this package re-exports them for compact imports.
package domain
