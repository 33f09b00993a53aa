// Package app wires application dependencies for the CLI and the server.
//
// It loads Config from YAML and the environment, then builds the session
// store, metrics and calculator service, exposing them via the Wire struct.
package app
