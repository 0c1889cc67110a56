package selector

// Notifier fires the picker's outward callbacks. Filter notifications
// are de-duplicated against the last emitted triple so repeated
// normalization passes never produce redundant events. Nil callbacks
// are allowed and skipped.
type Notifier struct {
	OnSelectionChanged func(ids []string)
	OnFiltersChanged   func(department, role, search string)

	emitted  bool
	lastDept string
	lastRole string
	lastText string
}

// SelectionChanged reports a new selection snapshot.
func (n *Notifier) SelectionChanged(ids []string) {
	if n.OnSelectionChanged != nil {
		n.OnSelectionChanged(ids)
	}
}

// FiltersChanged reports the current criteria triple, suppressing the
// event when nothing changed since the last emission.
func (n *Notifier) FiltersChanged(department, role, search string) {
	if n.emitted && department == n.lastDept && role == n.lastRole && search == n.lastText {
		return
	}
	n.emitted = true
	n.lastDept, n.lastRole, n.lastText = department, role, search
	if n.OnFiltersChanged != nil {
		n.OnFiltersChanged(department, role, search)
	}
}
