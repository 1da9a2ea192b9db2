package report

import (
	"sort"
)

// Severity grades a violation. The order error > warning > info is used for
// display only; whether a severity blocks publication is the caller's
// policy, never decided here.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rank returns a total order for display sorting, lower is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Violation is the single vocabulary every check emits into. Position is a
// character offset into the validated content, 0 when the finding is not
// localized. Suggestion must be non-empty whenever Severity is error.
type Violation struct {
	RuleID     string   `json:"ruleId"`
	Severity   Severity `json:"severity"`
	Text       string   `json:"text"`
	Position   int      `json:"position"`
	Suggestion string   `json:"suggestion,omitempty"`
	Category   string   `json:"category,omitempty"`
}

// Report is the stable output of one validation pass. Violations are ordered
// by position ascending, then rule id. Degraded is set when one or more
// checks could not run; the report is then a lower bound on problems.
type Report struct {
	Violations []Violation `json:"violations"`
	Errors     int         `json:"errors"`
	Warnings   int         `json:"warnings"`
	Infos      int         `json:"infos"`
	Degraded   bool        `json:"degraded"`
}

// Build assembles a report from raw check output: sorts for reproducibility
// and derives the per-severity counts. The input slice is not mutated.
func Build(violations []Violation, degraded bool) Report {
	vs := make([]Violation, len(violations))
	copy(vs, violations)
	sort.SliceStable(vs, func(i, j int) bool {
		if vs[i].Position != vs[j].Position {
			return vs[i].Position < vs[j].Position
		}
		return vs[i].RuleID < vs[j].RuleID
	})
	r := Report{Violations: vs, Degraded: degraded}
	for _, v := range vs {
		switch v.Severity {
		case SeverityError:
			r.Errors++
		case SeverityWarning:
			r.Warnings++
		default:
			r.Infos++
		}
	}
	return r
}

// CollapseByRule returns at most one violation per rule id, keeping the
// first in report order. Duplicate rule ids from independent checks carry
// independent diagnostics, so the full report intentionally keeps them;
// this helper serves callers that want one entry per rule.
func (r Report) CollapseByRule() []Violation {
	seen := make(map[string]struct{}, len(r.Violations))
	out := make([]Violation, 0, len(r.Violations))
	for _, v := range r.Violations {
		if _, ok := seen[v.RuleID]; ok {
			continue
		}
		seen[v.RuleID] = struct{}{}
		out = append(out, v)
	}
	return out
}
