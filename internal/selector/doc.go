// Package selector implements the roster picker's derivation pipeline and
// state machines: sorting, filtering, cascading filter options, the
// selection set, keyboard navigation, and name formatting.
//
// Everything here is either a pure function over a roster snapshot or a
// small synchronous state machine, so the picker's behavior is fully
// testable without a terminal. The app layer owns popover chrome and
// feeds events in; this package never touches rendering.
package selector
