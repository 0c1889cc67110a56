package app

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/huddle-tui/huddle/internal/budget"
	"github.com/huddle-tui/huddle/internal/combobox"
	"github.com/huddle-tui/huddle/internal/config"
	"github.com/huddle-tui/huddle/internal/debug"
	"github.com/huddle-tui/huddle/internal/roster"
	"github.com/huddle-tui/huddle/internal/selector"
	"github.com/huddle-tui/huddle/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateMenu State = iota
	StatePicker
	StateCombobox
	StateBudget
	StateHelp
)

// menuEntries are the showcase screens in menu order.
var menuEntries = []string{"Team picker", "Company combobox", "Budget estimator"}

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config
	keys   KeyMap

	// Data
	people         []roster.Person
	allDepartments []string
	allRoles       []string
	loading        bool
	err            error

	// Picker: derived view state
	criteria    selector.Criteria
	sortMode    selector.SortMode
	view        []roster.Person
	roleOptions []string

	// Picker: selection + popover state
	selection      *selector.Selection
	notifier       *selector.Notifier
	highlight      int
	popoverOpen    bool
	userClosed     bool
	deptApplied    bool
	triggerFocused bool
	popoverSeq     int
	searchInput    textinput.Model
	searchFocused  bool
	narrow         *selector.BoolSignal
	stopNarrow     func()

	// Combobox
	combo combobox.Model

	// Budget
	budgetStep  budget.Step
	teamInput   textinput.Model
	weeksInput  textinput.Model
	rateInput   textinput.Model
	contInput   textinput.Model
	budgetFocus int

	// UI
	state      State
	helpReturn State
	menuCursor int
	width      int
	height     int

	// Exit behavior
	shouldQuit bool
}

// New creates a new Model.
func New(cfg *config.Config) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "search name, email, role, title..."
	searchInput.CharLimit = 64

	teamInput := textinput.New()
	teamInput.Placeholder = "people"
	teamInput.CharLimit = 4

	weeksInput := textinput.New()
	weeksInput.Placeholder = "weeks"
	weeksInput.CharLimit = 4

	rateInput := textinput.New()
	rateInput.Placeholder = "day rate"
	rateInput.CharLimit = 10

	contInput := textinput.New()
	contInput.Placeholder = "contingency %"
	contInput.CharLimit = 5

	mode := selector.ModeFromString(cfg.Picker.Mode)
	narrow := selector.NewBoolSignal(false) // wide until the terminal reports a size

	m := Model{
		config:         cfg,
		keys:           KeyMapFromConfig(&cfg.Keys),
		sortMode:       selector.SortModeFromString(cfg.Picker.Sort),
		selection:      selector.NewSelection(mode, cfg.Picker.MaxSelected, cfg.Picker.AllowClear, nil),
		notifier:       &selector.Notifier{},
		narrow:         narrow,
		searchInput:    searchInput,
		teamInput:      teamInput,
		weeksInput:     weeksInput,
		rateInput:      rateInput,
		contInput:      contInput,
		state:          StateMenu,
		loading:        true,
		triggerFocused: true,
	}

	m.notifier.OnSelectionChanged = func(ids []string) {
		debug.Log("selection changed: %v", ids)
	}
	m.notifier.OnFiltersChanged = func(dept, role, search string) {
		debug.Log("filters changed: dept=%q role=%q search=%q", dept, role, search)
	}
	m.stopNarrow = narrow.Subscribe(func(v bool) {
		debug.Log("narrow signal: %v", v)
	})

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadRoster(m.config.General.RosterPath),
		loadDraft,
	)
}

// Teardown cancels the width-signal subscription. Pending popover ticks
// are neutralized by bumping the generation so they arrive stale.
func (m *Model) Teardown() {
	if m.stopNarrow != nil {
		m.stopNarrow()
		m.stopNarrow = nil
	}
	m.popoverSeq++
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.narrow.Set(m.config.Picker.NarrowWidth > 0 && msg.Width <= m.config.Picker.NarrowWidth)
		return m, nil

	case tea.KeyMsg:
		// Handle quit globally from the menu
		if key.Matches(msg, m.keys.Quit) && m.state == StateMenu {
			m.shouldQuit = true
			m.Teardown()
			return m, tea.Quit
		}

		// Delegate to state-specific handler
		return m.handleKeyPress(msg)

	case RosterLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.people = msg.File.People
		m.allDepartments = roster.Departments(m.people)
		m.allRoles = roster.Roles(m.people)
		m.combo = combobox.New(msg.File.Companies)
		m.applyDefaultDepartment()
		m.recompute()
		return m, nil

	case PopoverCollapseMsg:
		// Stale generation = canceled timer
		if msg.Seq == m.popoverSeq {
			m.popoverOpen = false
		}
		return m, nil

	case RefocusTriggerMsg:
		if msg.Seq == m.popoverSeq {
			m.triggerFocused = true
			m.searchFocused = false
			m.searchInput.Blur()
		}
		return m, nil

	case DraftLoadedMsg:
		if msg.Draft != nil {
			m.restoreDraft(msg.Draft.Estimate)
		}
		return m, nil

	case DraftSavedMsg:
		// A lost draft is not worth surfacing in the UI
		if msg.Err != nil {
			debug.Log("draft save failed: %v", msg.Err)
		}
		return m, nil
	}

	return m, nil
}

// applyDefaultDepartment seeds the department filter from config,
// exactly once, and only when the value is a real option. An explicit
// user choice (deptApplied) is never overridden.
func (m *Model) applyDefaultDepartment() {
	if m.deptApplied || m.criteria.Department != "" {
		return
	}
	want := m.config.Picker.DefaultDepartment
	if want == "" {
		return
	}
	for _, d := range m.allDepartments {
		if d == want {
			m.criteria.Department = want
			break
		}
	}
	m.deptApplied = true
}

// recompute re-derives the picker's view from current inputs: normalize
// the criteria (cascading role clear), derive role options, sort, then
// filter. Runs after every input change; there is no cached state to
// invalidate.
func (m *Model) recompute() {
	m.criteria.Normalize(m.people, m.allRoles)
	m.roleOptions = selector.AvailableRoles(m.people, m.criteria.Department, m.allRoles)
	sorted := selector.Sort(m.people, m.sortMode, m.config.General.CurrentUser)
	m.view = selector.Filter(sorted, m.criteria)
	m.highlight = selector.ClampHighlight(m.highlight, len(m.view))
	m.notifier.FiltersChanged(m.criteria.Department, m.criteria.Role, m.criteria.Search)
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateMenu:
		return m.handleMenuKeys(msg)
	case StatePicker:
		return m.handlePickerKeys(msg)
	case StateCombobox:
		return m.handleComboKeys(msg)
	case StateBudget:
		return m.handleBudgetKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

// handleMenuKeys handles key presses on the showcase menu.
func (m Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(menuEntries)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Select):
		return m.enterScreen(m.menuCursor)
	case key.Matches(msg, m.keys.Help):
		m.helpReturn = StateMenu
		m.state = StateHelp
	default:
		switch msg.String() {
		case "1":
			return m.enterScreen(0)
		case "2":
			return m.enterScreen(1)
		case "3":
			return m.enterScreen(2)
		}
	}
	return m, nil
}

func (m Model) enterScreen(idx int) (tea.Model, tea.Cmd) {
	switch idx {
	case 0:
		m.state = StatePicker
		m.triggerFocused = true
	case 1:
		m.state = StateCombobox
		m.combo.Input.Focus()
		return m, textinput.Blink
	case 2:
		m.state = StateBudget
		m.budgetStep = budget.StepTeam
		m.budgetFocus = 0
		m.teamInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// handlePickerKeys handles key presses in the roster picker.
func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		switch {
		case key.Matches(msg, m.keys.Retry):
			m.loading = true
			m.err = nil
			return m, loadRoster(m.config.General.RosterPath)
		case key.Matches(msg, m.keys.Back):
			m.state = StateMenu
		}
		return m, nil
	}

	// While the search input is focused, most keys are text. The
	// toggle key must not act here: toggling only applies when the
	// list itself holds focus.
	if m.searchFocused {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.searchFocused = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.criteria.Search = m.searchInput.Value()
		m.recompute()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shouldQuit = true
		m.Teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.popoverOpen {
			// Explicit dismissal: the guard keeps prop churn from
			// reopening the popover behind the user's back.
			m.popoverOpen = false
			m.userClosed = true
			m.triggerFocused = true
			return m, nil
		}
		m.state = StateMenu
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if !m.popoverOpen {
			// Trigger activation is the one legal way back open.
			m.popoverOpen = true
			m.userClosed = false
			m.triggerFocused = false
			return m, nil
		}
		if len(m.view) == 0 {
			return m, nil
		}
		return m.toggleID(m.view[m.highlight].ID)

	case key.Matches(msg, m.keys.Toggle):
		// List-level toggle for multiple mode, acting on the virtual
		// highlight rather than any focused row.
		if m.selection.Mode() == selector.Multiple && m.popoverOpen && len(m.view) > 0 {
			return m.toggleID(m.view[m.highlight].ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.stepOrMove(selector.Backward)

	case key.Matches(msg, m.keys.Down):
		return m.stepOrMove(selector.Forward)

	case key.Matches(msg, m.keys.Search):
		m.popoverOpen = true
		m.userClosed = false
		m.triggerFocused = false
		m.searchFocused = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.DeptNext):
		if m.config.Picker.DepartmentFilter {
			m.criteria.Department = cycleOption(m.criteria.Department, m.allDepartments)
			m.deptApplied = true
			m.recompute()
		}
		return m, nil

	case key.Matches(msg, m.keys.RoleNext):
		if m.config.Picker.RoleFilter {
			m.criteria.Role = cycleOption(m.criteria.Role, m.roleOptions)
			m.recompute()
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if len(m.view) > 0 && m.selection.Remove(m.view[m.highlight].ID) {
			m.notifier.SelectionChanged(m.selection.IDs())
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if m.selection.Clear() {
			m.notifier.SelectionChanged(m.selection.IDs())
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.helpReturn = StatePicker
		m.state = StateHelp
		return m, nil
	}
	return m, nil
}

// stepOrMove maps a directional key. Single mode quick-cycles the
// selection through the filtered view with wrap-around, open or closed.
// Multiple mode moves the virtual highlight within the open popover.
func (m Model) stepOrMove(dir selector.Direction) (tea.Model, tea.Cmd) {
	if m.selection.Mode() == selector.Single {
		id, ok := selector.Step(m.view, m.selection.First(), dir)
		if !ok {
			return m, nil
		}
		if m.selection.Replace(id) {
			m.notifier.SelectionChanged(m.selection.IDs())
		}
		m.highlight = indexOf(m.view, id)
		return m, nil
	}

	if !m.popoverOpen || len(m.view) == 0 {
		return m, nil
	}
	if dir == selector.Forward {
		if m.highlight < len(m.view)-1 {
			m.highlight++
		}
	} else if m.highlight > 0 {
		m.highlight--
	}
	return m, nil
}

// toggleID flips one person's membership and, on a single-mode commit,
// schedules the deferred collapse and refocus ticks. The refocus delay
// is the longer one so focus restoration follows the collapse.
func (m Model) toggleID(id string) (tea.Model, tea.Cmd) {
	res := m.selection.Toggle(id)
	if res.Changed {
		m.notifier.SelectionChanged(m.selection.IDs())
	}
	if !res.Collapse {
		return m, nil
	}

	m.popoverSeq++
	seq := m.popoverSeq
	closeDelay := time.Duration(m.config.Timing.CloseDelayMS) * time.Millisecond
	refocusDelay := time.Duration(m.config.Timing.RefocusDelayMS) * time.Millisecond
	return m, tea.Batch(
		tea.Tick(closeDelay, func(time.Time) tea.Msg { return PopoverCollapseMsg{Seq: seq} }),
		tea.Tick(refocusDelay, func(time.Time) tea.Msg { return RefocusTriggerMsg{Seq: seq} }),
	)
}

// handleComboKeys handles key presses in the company combobox.
func (m Model) handleComboKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.combo.Input.Blur()
		m.state = StateMenu
		return m, nil
	case tea.KeyUp:
		m.combo.MoveUp()
		return m, nil
	case tea.KeyDown:
		m.combo.MoveDown()
		return m, nil
	case tea.KeyEnter:
		m.combo.Commit()
		return m, nil
	}

	var cmd tea.Cmd
	m.combo.Input, cmd = m.combo.Input.Update(msg)
	m.combo.Refilter()
	return m, cmd
}

// handleBudgetKeys handles key presses in the budget estimator.
func (m Model) handleBudgetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.budgetStep == budget.StepTeam {
			m.blurBudgetInputs()
			m.state = StateMenu
			return m, saveDraft(m.estimate())
		}
		m.budgetStep = m.budgetStep.Prev()
		m.budgetFocus = 0
		return m, m.focusBudgetInput()

	case tea.KeyTab:
		if m.budgetStep != budget.StepSummary {
			m.budgetFocus = 1 - m.budgetFocus
			return m, m.focusBudgetInput()
		}
		return m, nil

	case tea.KeyEnter:
		if m.budgetStep == budget.StepSummary {
			m.blurBudgetInputs()
			m.state = StateMenu
			return m, saveDraft(m.estimate())
		}
		m.budgetStep = m.budgetStep.Next()
		m.budgetFocus = 0
		cmd := m.focusBudgetInput()
		if m.budgetStep == budget.StepSummary {
			return m, tea.Batch(cmd, saveDraft(m.estimate()))
		}
		return m, cmd
	}

	var cmd tea.Cmd
	switch {
	case m.budgetStep == budget.StepTeam && m.budgetFocus == 0:
		m.teamInput, cmd = m.teamInput.Update(msg)
	case m.budgetStep == budget.StepTeam:
		m.weeksInput, cmd = m.weeksInput.Update(msg)
	case m.budgetStep == budget.StepRates && m.budgetFocus == 0:
		m.rateInput, cmd = m.rateInput.Update(msg)
	case m.budgetStep == budget.StepRates:
		m.contInput, cmd = m.contInput.Update(msg)
	}
	return m, cmd
}

// handleHelpKeys handles key presses in the help view.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	m.state = m.helpReturn
	return m, nil
}

// estimate assembles the current figures from the inputs.
func (m Model) estimate() budget.Estimate {
	return budget.Estimate{
		TeamSize:       budget.ParseCount(m.teamInput.Value()),
		Weeks:          budget.ParseCount(m.weeksInput.Value()),
		DayRate:        budget.ParseAmount(m.rateInput.Value()),
		ContingencyPct: budget.ParseAmount(m.contInput.Value()),
	}
}

// restoreDraft fills the estimator inputs from a saved draft.
func (m *Model) restoreDraft(e budget.Estimate) {
	if e.TeamSize > 0 {
		m.teamInput.SetValue(strconv.Itoa(e.TeamSize))
	}
	if e.Weeks > 0 {
		m.weeksInput.SetValue(strconv.Itoa(e.Weeks))
	}
	if e.DayRate > 0 {
		m.rateInput.SetValue(strconv.FormatFloat(e.DayRate, 'f', -1, 64))
	}
	if e.ContingencyPct > 0 {
		m.contInput.SetValue(strconv.FormatFloat(e.ContingencyPct, 'f', -1, 64))
	}
}

func (m *Model) focusBudgetInput() tea.Cmd {
	m.blurBudgetInputs()
	switch {
	case m.budgetStep == budget.StepTeam && m.budgetFocus == 0:
		m.teamInput.Focus()
	case m.budgetStep == budget.StepTeam:
		m.weeksInput.Focus()
	case m.budgetStep == budget.StepRates && m.budgetFocus == 0:
		m.rateInput.Focus()
	case m.budgetStep == budget.StepRates:
		m.contInput.Focus()
	default:
		return nil
	}
	return textinput.Blink
}

func (m *Model) blurBudgetInputs() {
	m.teamInput.Blur()
	m.weeksInput.Blur()
	m.rateInput.Blur()
	m.contInput.Blur()
}

// View renders the UI.
func (m Model) View() string {
	compact := selector.Compact(m.config.CompactOverride(), m.narrow.Get())

	names := make([]string, 0, m.selection.Len())
	byID := roster.ByID(m.people)
	for _, id := range m.selection.IDs() {
		if p, ok := byID[id]; ok {
			names = append(names, selector.FormatName(p, compact))
		}
	}

	return ui.Render(ui.RenderParams{
		State:          int(m.state),
		Width:          m.width,
		Height:         m.height,
		Loading:        m.loading,
		Err:            m.err,
		MenuEntries:    menuEntries,
		MenuCursor:     m.menuCursor,
		View:           m.view,
		RosterEmpty:    len(m.people) == 0,
		Highlight:      m.highlight,
		SelectedIDs:    m.selection.IDs(),
		SelectedNames:  names,
		Multiple:       m.selection.Mode() == selector.Multiple,
		MaxSelected:    m.config.Picker.MaxSelected,
		PopoverOpen:    m.popoverOpen,
		TriggerFocused: m.triggerFocused,
		SearchInput:    m.searchInput.View(),
		SearchValue:    m.criteria.Search,
		SearchFocused:  m.searchFocused,
		Department:     m.criteria.Department,
		Role:           m.criteria.Role,
		ShowDeptFilter: m.config.Picker.DepartmentFilter,
		ShowRoleFilter: m.config.Picker.RoleFilter,
		Compact:        compact,
		ShowTitles:     m.config.UI.ShowTitles,
		CurrentUserID:  m.config.General.CurrentUser,
		Companies:      m.combo.Visible(),
		ComboCursor:    m.combo.Cursor(),
		ComboInput:     m.combo.Input.View(),
		ComboChosen:    m.combo.Chosen(),
		BudgetStep:     int(m.budgetStep),
		TeamInput:      m.teamInput.View(),
		WeeksInput:     m.weeksInput.View(),
		RateInput:      m.rateInput.View(),
		ContInput:      m.contInput.View(),
		Estimate:       m.estimate(),
	})
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Commands

func loadRoster(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			path = "roster.yaml"
		}
		f, err := roster.Load(path)
		return RosterLoadedMsg{File: f, Err: err}
	}
}

func loadDraft() tea.Msg {
	return DraftLoadedMsg{Draft: budget.LoadDraft()}
}

func saveDraft(e budget.Estimate) tea.Cmd {
	return func() tea.Msg {
		return DraftSavedMsg{Err: budget.SaveDraft(e)}
	}
}

// Helper functions

// cycleOption advances through "" (no constraint) followed by options.
func cycleOption(current string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, o := range options {
		if o == current {
			if i == len(options)-1 {
				return ""
			}
			return options[i+1]
		}
	}
	return ""
}

func indexOf(view []roster.Person, id string) int {
	for i, p := range view {
		if p.ID == id {
			return i
		}
	}
	return 0
}
