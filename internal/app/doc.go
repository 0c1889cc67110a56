// Package app provides the main Bubble Tea application model for huddle.
//
// It manages the UI state machine, handles user input, and coordinates
// between the selector logic and UI rendering. The package implements a
// menu screen plus three showcase widgets: the roster picker, the
// company combobox, and the budget estimator.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View) and manages all application state.
package app
