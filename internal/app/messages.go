package app

import (
	"github.com/huddle-tui/huddle/internal/budget"
	"github.com/huddle-tui/huddle/internal/roster"
)

// Message types for the bubbletea app.

// RosterLoadedMsg is sent when the roster file has been read.
type RosterLoadedMsg struct {
	File *roster.File
	Err  error
}

// PopoverCollapseMsg fires after the close delay of a single-mode
// selection. Seq guards against stale timers: a tick whose Seq no
// longer matches the model's popover generation is ignored.
type PopoverCollapseMsg struct {
	Seq int
}

// RefocusTriggerMsg fires after the refocus delay, returning keyboard
// focus to the trigger control. Guarded by Seq like PopoverCollapseMsg.
type RefocusTriggerMsg struct {
	Seq int
}

// DraftLoadedMsg is sent when the budget draft has been read.
type DraftLoadedMsg struct {
	Draft *budget.Draft
}

// DraftSavedMsg is sent when a budget draft write completes.
type DraftSavedMsg struct {
	Err error
}
