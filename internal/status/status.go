// Package status is the shared status-derivation engine. Every dashboard
// turns its metrics snapshot into an ordered table of rows; the engine
// evaluates the table deterministically into severity-tagged items and a
// worst-tier-wins aggregate. Nothing here is persisted: items are computed
// per render and discarded.
package status

// Severity is the health tier of a single metric or a whole dashboard.
type Severity string

const (
	Good     Severity = "good"
	Warning  Severity = "warning"
	Critical Severity = "critical"
)

// rank orders severities for worst-wins aggregation.
func (s Severity) rank() int {
	switch s {
	case Critical:
		return 2
	case Warning:
		return 1
	default:
		return 0
	}
}

// Label is the badge text shown next to the aggregate severity.
func (s Severity) Label() string {
	switch s {
	case Critical:
		return "Urgent Action Required"
	case Warning:
		return "Needs Attention"
	default:
		return "All Good"
	}
}

// Item is one computed, severity-tagged status message.
type Item struct {
	Section        string   `json:"section"`
	Status         Severity `json:"status"`
	Message        string   `json:"message"`
	ActionRequired string   `json:"actionRequired,omitempty"`
}

// Metric is one row of a dashboard's status table: a value, two thresholds,
// and a message per tier. Rows built with Static carry a precomputed tier
// for rules that do not reduce to a single threshold pair.
type Metric struct {
	Section string

	Value  float64
	GoodAt float64
	WarnAt float64
	// LowerIsBetter flips the comparison for inverse metrics such as
	// pending-approval or unresolved-issue counts.
	LowerIsBetter bool

	Good     string
	Warn     string
	Critical string

	// Actions attach only to non-good tiers.
	WarnAction     string
	CriticalAction string

	fixed     bool
	fixedTier Severity
}

// Static builds a row with a precomputed tier and message.
func Static(section string, tier Severity, message, action string) Metric {
	m := Metric{Section: section, fixed: true, fixedTier: tier}
	switch tier {
	case Good:
		m.Good = message
	case Warning:
		m.Warn = message
		m.WarnAction = action
	case Critical:
		m.Critical = message
		m.CriticalAction = action
	}
	return m
}

// Tier classifies the row's value.
func (m Metric) Tier() Severity {
	if m.fixed {
		return m.fixedTier
	}
	if m.LowerIsBetter {
		switch {
		case m.Value <= m.GoodAt:
			return Good
		case m.Value <= m.WarnAt:
			return Warning
		default:
			return Critical
		}
	}
	switch {
	case m.Value >= m.GoodAt:
		return Good
	case m.Value >= m.WarnAt:
		return Warning
	default:
		return Critical
	}
}

// Evaluate turns an ordered table into items, preserving table order. The
// same snapshot always yields the identical item list.
func Evaluate(table []Metric) []Item {
	items := make([]Item, 0, len(table))
	for _, m := range table {
		tier := m.Tier()
		item := Item{Section: m.Section, Status: tier}
		switch tier {
		case Good:
			item.Message = m.Good
		case Warning:
			item.Message = m.Warn
			item.ActionRequired = m.WarnAction
		case Critical:
			item.Message = m.Critical
			item.ActionRequired = m.CriticalAction
		}
		items = append(items, item)
	}
	return items
}

// Overall aggregates items worst-tier-wins.
func Overall(items []Item) Severity {
	overall := Good
	for _, item := range items {
		if item.Status.rank() > overall.rank() {
			overall = item.Status
		}
	}
	return overall
}

// Report is the full per-render result a dashboard shows: items in table
// order, the aggregate badge, and per-tier counts.
type Report struct {
	Items   []Item           `json:"items"`
	Overall Severity         `json:"overall"`
	Label   string           `json:"label"`
	Counts  map[Severity]int `json:"counts"`
}

// Summarize evaluates a table into a Report.
func Summarize(table []Metric) Report {
	items := Evaluate(table)
	overall := Overall(items)

	counts := map[Severity]int{Good: 0, Warning: 0, Critical: 0}
	for _, item := range items {
		counts[item.Status]++
	}

	return Report{
		Items:   items,
		Overall: overall,
		Label:   overall.Label(),
		Counts:  counts,
	}
}
