// Command calcd serves the Roman numeral calculator over HTTP.
//
// Each browser gets its own calculator session, tracked by a signed cookie.
// The keypad page is served at /, the JSON API under /api and Prometheus
// metrics at /metrics.
//
// Usage:
//
//	calcd [--config path] [--home dir] [--addr :8080]
//
// Settings come from the config file, then ROMANCALC_* environment variables,
// then flags.
package main
