package ui

import (
	"fmt"
	"strings"

	"github.com/huddle-tui/huddle/internal/budget"
	"github.com/huddle-tui/huddle/internal/roster"
	"github.com/huddle-tui/huddle/internal/selector"
)

// State constants (matching app.State)
const (
	StateMenu = iota
	StatePicker
	StateCombobox
	StateBudget
	StateHelp
)

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State   int
	Width   int
	Height  int
	Loading bool
	Err     error

	// Menu
	MenuEntries []string
	MenuCursor  int

	// Roster picker
	View           []roster.Person
	RosterEmpty    bool
	Highlight      int
	SelectedIDs    []string
	SelectedNames  []string
	Multiple       bool
	MaxSelected    int
	PopoverOpen    bool
	TriggerFocused bool
	SearchInput    string
	SearchValue    string
	SearchFocused  bool
	Department     string
	Role           string
	ShowDeptFilter bool
	ShowRoleFilter bool
	Compact        bool
	ShowTitles     bool
	CurrentUserID  string

	// Combobox
	Companies   []roster.Company
	ComboCursor int
	ComboInput  string
	ComboChosen string

	// Budget
	BudgetStep int
	TeamInput  string
	WeeksInput string
	RateInput  string
	ContInput  string
	Estimate   budget.Estimate
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// Render renders the full UI.
func Render(p RenderParams) string {
	// Graceful degradation for small terminals.
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	switch p.State {
	case StatePicker:
		return renderPicker(p)
	case StateCombobox:
		return renderCombobox(p)
	case StateBudget:
		return renderBudget(p)
	case StateHelp:
		return renderHelp(p)
	default:
		return renderMenu(p)
	}
}

// renderMenu renders the showcase menu.
func renderMenu(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("HUDDLE") + "  " + MutedStyle.Render("component showcase") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	for i, entry := range p.MenuEntries {
		if i == p.MenuCursor {
			b.WriteString(HighlightStyle.Render(SymbolCursor+" "+entry) + "\n")
		} else {
			b.WriteString(NormalStyle.Render("  "+entry) + "\n")
		}
	}

	b.WriteString("\n" + HelpStyle.Render("↑/↓ move · enter open · 1-3 jump · ? help · q quit"))
	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderPicker renders the roster picker screen. Abnormal states take
// precedence in a fixed order: error, then loading, then an empty
// roster, then empty filtered results, then the list.
func renderPicker(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("TEAM") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	if p.Err != nil {
		b.WriteString("\n" + ErrorStyle.Render("Error: "+p.Err.Error()) + "\n")
		b.WriteString(HelpStyle.Render("R retry · esc back") + "\n")
		return wrapInBox(b.String(), p.Width, p.Height)
	}

	if p.Loading {
		b.WriteString("\n" + MutedStyle.Render("Loading roster...") + "\n")
		return wrapInBox(b.String(), p.Width, p.Height)
	}

	b.WriteString(renderTrigger(p) + "\n")

	if p.RosterEmpty {
		b.WriteString("\n" + MutedStyle.Render("No people in the roster.") + "\n")
		return wrapInBox(b.String(), p.Width, p.Height)
	}

	if !p.PopoverOpen {
		b.WriteString("\n" + HelpStyle.Render("enter open · ↑/↓ cycle (single) · esc back") + "\n")
		return wrapInBox(b.String(), p.Width, p.Height)
	}

	b.WriteString(renderFilterBar(p) + "\n")

	if len(p.View) == 0 {
		b.WriteString("\n" + MutedStyle.Render("No matches for the current filters.") + "\n")
		return wrapInBox(b.String(), p.Width, p.Height)
	}

	for i, person := range p.View {
		b.WriteString(renderPersonRow(p, person, i == p.Highlight))
		if i < len(p.View)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n" + HelpStyle.Render("space toggle · enter select · / search · d dept · r role · x remove · c clear"))
	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderTrigger renders the closed-state trigger control line.
func renderTrigger(p RenderParams) string {
	label := "Select people"
	if !p.Multiple {
		label = "Select a person"
	}
	summary := label
	if len(p.SelectedNames) > 0 {
		summary = strings.Join(p.SelectedNames, ", ")
	}
	if p.Multiple && p.MaxSelected > 0 {
		summary += MutedStyle.Render(fmt.Sprintf("  (%d/%d)", len(p.SelectedIDs), p.MaxSelected))
	}

	line := summary + " " + SymbolCaret
	if p.TriggerFocused && !p.PopoverOpen {
		return HighlightStyle.Render(SymbolCursor+" ") + NormalStyle.Render(line)
	}
	return "  " + NormalStyle.Render(line)
}

// renderFilterBar renders the search input and active filter tags.
func renderFilterBar(p RenderParams) string {
	var parts []string
	if p.SearchFocused {
		parts = append(parts, p.SearchInput)
	} else if p.SearchValue != "" {
		parts = append(parts, MutedStyle.Render("search: ")+NormalStyle.Render(p.SearchValue))
	}
	if p.ShowDeptFilter {
		v := p.Department
		if v == "" {
			v = "all"
		}
		parts = append(parts, TagStyle.Render("dept: "+v))
	}
	if p.ShowRoleFilter {
		v := p.Role
		if v == "" {
			v = "all"
		}
		parts = append(parts, TagStyle.Render("role: "+v))
	}
	return strings.Join(parts, "  ")
}

// renderPersonRow renders one selectable row.
func renderPersonRow(p RenderParams, person roster.Person, highlighted bool) string {
	check := SymbolUnchecked
	checked := false
	for _, id := range p.SelectedIDs {
		if id == person.ID {
			check = SymbolChecked
			checked = true
			break
		}
	}
	if !p.Multiple {
		check = " "
		if checked {
			check = SymbolDot
		}
	}

	name := selector.FormatName(person, p.Compact)
	line := check + " " + name
	if p.ShowTitles && person.Title != "" {
		line += "  " + TagStyle.Render(person.Title)
	}
	if person.Department != "" {
		line += "  " + TagStyle.Render(person.Department)
	}
	if person.IsManager {
		line += " " + ManagerStyle.Render(SymbolManager)
	}
	if person.ID == p.CurrentUserID {
		line += " " + CurrentStyle.Render(SymbolCurrent+" you")
	}

	if highlighted {
		return HighlightStyle.Render(SymbolCursor+" ") + NormalStyle.Render(line)
	}
	if checked {
		return "  " + CheckedStyle.Render(line)
	}
	return "  " + NormalStyle.Render(line)
}

// renderCombobox renders the company combobox screen.
func renderCombobox(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("COMPANY") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	if p.ComboChosen != "" {
		b.WriteString(CheckedStyle.Render(SymbolDot+" "+p.ComboChosen) + "\n\n")
	}

	b.WriteString(p.ComboInput + "\n\n")

	if len(p.Companies) == 0 {
		b.WriteString(MutedStyle.Render("No matches.") + "\n")
	}
	for i, c := range p.Companies {
		line := c.Name
		if c.Domain != "" {
			line += "  " + TagStyle.Render(c.Domain)
		}
		if i == p.ComboCursor {
			b.WriteString(HighlightStyle.Render(SymbolCursor+" ") + NormalStyle.Render(line) + "\n")
		} else {
			b.WriteString("  " + NormalStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + HelpStyle.Render("type to filter · ↑/↓ move · enter choose · esc back"))
	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderBudget renders the budget estimator screen.
func renderBudget(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("BUDGET") + "  " + MutedStyle.Render(budgetStepLabel(p.BudgetStep)) + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	switch p.BudgetStep {
	case int(budget.StepTeam):
		b.WriteString(MutedStyle.Render("Team size") + "\n" + p.TeamInput + "\n\n")
		b.WriteString(MutedStyle.Render("Duration (weeks)") + "\n" + p.WeeksInput + "\n")
	case int(budget.StepRates):
		b.WriteString(MutedStyle.Render("Day rate") + "\n" + p.RateInput + "\n\n")
		b.WriteString(MutedStyle.Render("Contingency (%)") + "\n" + p.ContInput + "\n")
	default:
		e := p.Estimate
		if !e.Complete() {
			b.WriteString(MutedStyle.Render("Estimate incomplete; go back and fill in the figures.") + "\n")
		} else {
			fmt.Fprintf(&b, "%s %d people x %d weeks\n", MutedStyle.Render("Scope:"), e.TeamSize, e.Weeks)
			fmt.Fprintf(&b, "%s %.2f\n", MutedStyle.Render("Base:"), e.Base())
			fmt.Fprintf(&b, "%s %.2f (%.0f%%)\n", MutedStyle.Render("Contingency:"), e.Contingency(), e.ContingencyPct)
			b.WriteString(TitleStyle.Render(fmt.Sprintf("Total: %.2f", e.Total())) + "\n")
		}
	}

	b.WriteString("\n" + HelpStyle.Render("tab field · enter next · esc back"))
	return wrapInBox(b.String(), p.Width, p.Height)
}

func budgetStepLabel(step int) string {
	switch step {
	case int(budget.StepTeam):
		return "step 1/3 - team"
	case int(budget.StepRates):
		return "step 2/3 - rates"
	default:
		return "step 3/3 - summary"
	}
}

// renderHelp renders the help screen.
func renderHelp(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("HELP") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	sections := []struct {
		title string
		lines []string
	}{
		{"Picker", []string{
			"enter      open popover / select highlighted",
			"space      toggle highlighted (multiple mode)",
			"↑/↓ (j/k)  move highlight; quick-cycle in single mode",
			"/          search",
			"d / r      cycle department / role filter",
			"x / c      remove highlighted / clear all",
			"esc        close popover, then back",
		}},
		{"Combobox", []string{
			"type       filter companies",
			"enter      choose highlighted",
		}},
		{"Budget", []string{
			"tab        switch field",
			"enter      next step",
		}},
	}
	for _, s := range sections {
		b.WriteString(TitleStyle.Render(s.title) + "\n")
		for _, l := range s.lines {
			b.WriteString("  " + NormalStyle.Render(l) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("press any key to go back"))
	return wrapInBox(b.String(), p.Width, p.Height)
}

// wrapInBox wraps content in the outer box, clamped to the terminal.
func wrapInBox(content string, width, height int) string {
	return BoxStyle.Width(width - 2).Render(content)
}
