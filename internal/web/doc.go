// Package web serves the browser calculator and its JSON API.
//
// HTTP API
//
//	GET  /                      the calculator page
//	GET  /health                liveness
//	GET  /metrics               Prometheus metrics
//	GET  /v1/state              current state of the caller's session
//	POST /v1/press              {"action":"X"} apply one action
//	DELETE /v1/session          forget the caller's session
//	POST /v1/convert/to-roman   {"value":1994}
//	POST /v1/convert/to-int     {"numeral":"MCMXCIV"}
//
// Sessions are identified by a signed cookie. A missing or tampered cookie
// starts a new session. Requests are rate limited per client address when a
// limit is configured.
package web
