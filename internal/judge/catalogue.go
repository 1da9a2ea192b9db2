// Package judge evaluates the rules whose judgment is too semantic for
// pattern matching by delegating to a chat model, with a deterministic
// heuristic fallback per rule. The primary/fallback pair is an explicit
// resilience strategy: the model call is attempted exactly once per rule
// per pass, and on any failure the fallback decides. When a rule has no
// fallback it is skipped and the report marked degraded.
package judge

import (
	"fmt"

	"github.com/hyperifyio/contentlint/internal/report"
)

// FallbackFunc is a deterministic stand-in for one rule, with the same
// shape as every other check.
type FallbackFunc func(content string, vc *report.Context) []report.Violation

// RuleDefinition is one catalogue entry. Prompt is the rule-specific
// instruction sent to the model; Suggestion is attached to violations the
// rule produces.
type RuleDefinition struct {
	ID         string
	Severity   report.Severity
	Title      string
	Category   string
	Prompt     string
	Suggestion string
	Fallback   FallbackFunc
}

// Catalogue is a validated, immutable set of rule definitions.
type Catalogue struct {
	rules []RuleDefinition
}

// NewCatalogue validates integrity once at load time: rule ids must be
// unique across the whole catalogue.
func NewCatalogue(rules []RuleDefinition) (*Catalogue, error) {
	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if r.ID == "" {
			return nil, fmt.Errorf("rule with empty id (title %q)", r.Title)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("duplicate rule id %q", r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return &Catalogue{rules: rules}, nil
}

// MustNewCatalogue panics on integrity failure; for statically defined
// catalogues where a duplicate id is a programming error.
func MustNewCatalogue(rules []RuleDefinition) *Catalogue {
	c, err := NewCatalogue(rules)
	if err != nil {
		panic(err)
	}
	return c
}

// Rules returns the definitions in declaration order.
func (c *Catalogue) Rules() []RuleDefinition {
	return c.rules
}

// Default is the built-in catalogue of semantic rules.
func Default() *Catalogue {
	return MustNewCatalogue([]RuleDefinition{
		{
			ID:       "FIRST_PERSON_VOICE",
			Severity: report.SeverityWarning,
			Title:    "Uses first-person voice",
			Category: "voice",
			Prompt: "Judge whether the content speaks in a first-person voice " +
				"(\"we\", \"our\") rather than an impersonal third person. " +
				"Occasional impersonal sentences are fine; the overall voice decides.",
			Suggestion: "speak as the organisation: 'we recommend', 'our approach'",
			Fallback:   fallbackFirstPerson,
		},
		{
			ID:       "CONCRETE_EXAMPLES",
			Severity: report.SeverityWarning,
			Title:    "Gives concrete examples",
			Category: "substance",
			Prompt: "Judge whether the content supports its claims with at least one " +
				"concrete example, scenario, or named case rather than staying abstract.",
			Suggestion: "add a worked example or a named case that shows the claim in practice",
			Fallback:   fallbackConcreteExamples,
		},
		{
			ID:       "DEFINITION_OPENING",
			Severity: report.SeverityWarning,
			Title:    "Opens with a definition of 40-60 words",
			Category: "structure",
			Prompt: "Judge whether the content opens with a direct definition of its " +
				"subject, roughly 40 to 60 words long, before elaborating.",
			Suggestion: "open with one definitional sentence of 40-60 words naming the subject",
			Fallback:   fallbackDefinitionOpening,
		},
		{
			ID:       "MARKETING_FLUFF",
			Severity: report.SeverityWarning,
			Title:    "Avoids marketing superlatives",
			Category: "tone",
			Prompt: "Judge whether the content avoids unsubstantiated marketing " +
				"superlatives (best, revolutionary, world-class) in favour of " +
				"verifiable statements.",
			Suggestion: "replace superlatives with verifiable, specific claims",
			Fallback:   fallbackMarketingFluff,
		},
		{
			ID:       "SEARCH_INTENT_MATCH",
			Severity: report.SeverityError,
			Title:    "Answers the search intent",
			Category: "intent",
			Prompt: "Judge whether the content actually answers the search intent it " +
				"targets, as opposed to talking around it. The intent is given in the " +
				"context block.",
			Suggestion: "answer the target question directly in the opening, then elaborate",
			// Intent matching has no useful deterministic proxy; when the
			// model is unreachable this rule is skipped and the report
			// degrades.
		},
	})
}
