// Package budget implements the multi-step budget estimator widget.
package budget

import "strconv"

// Step identifies the estimator's current page.
type Step int

const (
	StepTeam    Step = iota // team size and duration
	StepRates               // day rate per person
	StepSummary             // computed totals
)

// workdaysPerWeek is the billing convention for estimates.
const workdaysPerWeek = 5

// Estimate holds the figures entered across the steps.
type Estimate struct {
	TeamSize int     `json:"team_size"`
	Weeks    int     `json:"weeks"`
	DayRate  float64 `json:"day_rate"`

	// Contingency percentage applied on top of the base total
	ContingencyPct float64 `json:"contingency_pct"`
}

// Base returns the uncushioned cost: people x weeks x workdays x rate.
func (e Estimate) Base() float64 {
	return float64(e.TeamSize) * float64(e.Weeks) * workdaysPerWeek * e.DayRate
}

// Contingency returns the cushion amount.
func (e Estimate) Contingency() float64 {
	return e.Base() * e.ContingencyPct / 100
}

// Total returns base plus contingency.
func (e Estimate) Total() float64 {
	return e.Base() + e.Contingency()
}

// Complete reports whether every step has usable figures.
func (e Estimate) Complete() bool {
	return e.TeamSize > 0 && e.Weeks > 0 && e.DayRate > 0
}

// ParseCount parses a positive integer field, returning 0 for anything
// unusable. Blank or bad input is not an error at this layer; the step
// simply stays incomplete.
func ParseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseAmount parses a non-negative money/percent field, returning 0
// for anything unusable.
func ParseAmount(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// Next advances the step, stopping at the summary.
func (s Step) Next() Step {
	if s >= StepSummary {
		return StepSummary
	}
	return s + 1
}

// Prev goes back one step, stopping at the first.
func (s Step) Prev() Step {
	if s <= StepTeam {
		return StepTeam
	}
	return s - 1
}
