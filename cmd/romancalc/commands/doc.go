// Package commands defines the romancalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - to-roman <n>          Print the canonical numeral for n
//   - to-int <numeral>      Print the value of a numeral (lenient)
//   - press <token>...      Apply actions to the stored session
//   - show                  Print the stored session's state
//   - clear                 Reset the stored session
//   - repl                  Line-oriented interactive calculator
//   - keypad                Full-screen keypad calculator
//
// # Implementation
//
// The root command loads the config and builds the dependency graph (session
// store, metrics, calculator service) before any subcommand runs. Sessions
// persist between invocations, so `press X +` followed by `press V =` prints
// XV.
package commands
