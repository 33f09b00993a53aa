// Package client provides an HTTP implementation of
// domain.CalculatorService that talks to a calcd server.
//
// calcd identifies sessions by a signed cookie, so the client keeps one
// cookie jar per local session ID. A session therefore lives as long as the
// Client value; a new Client starts fresh server-side sessions.
//
// All requests are JSON over HTTP and honour the context for cancellation
// and deadlines. Non-2xx statuses are returned as errors carrying the method,
// path and the server's error message when it sent one.
package client
