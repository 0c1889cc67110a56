// Package debug provides debug logging functionality for huddle.
//
// When enabled via the --debug flag, it logs selector state changes and
// emitted callbacks to help diagnose issues.
package debug
