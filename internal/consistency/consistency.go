// Package consistency detects contradictory facts between the document
// under validation and sibling documents in the same collection. The check
// fails open: any corpus-access problem yields "no contradictions", never a
// hard error, so a flaky document store cannot block publication.
package consistency

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/triple"
)

// RuleID is the identifier for cross-document contradictions.
const RuleID = "EAV_CONSISTENCY"

// Validator compares the context's triples against sibling triples fetched
// from the corpus. Tolerance is the relative tolerance for numeric values,
// expressed as a fraction of the larger value.
type Validator struct {
	Tolerance float64
	Log       zerolog.Logger
}

// Check implements the validator contract. It reports nothing when the
// context carries no corpus handle or collection, and fails open on any
// fetch error.
func (v *Validator) Check(ctx context.Context, _ string, vc *report.Context) ([]report.Violation, error) {
	if vc.Corpus == nil || strings.TrimSpace(vc.Collection) == "" {
		return nil, nil
	}
	var current []triple.Triple
	for _, t := range vc.Triples {
		if t.Usable() {
			current = append(current, t)
		}
	}
	if len(current) == 0 {
		return nil, nil
	}

	siblings, err := vc.Corpus.FetchSiblingTriples(ctx, vc.Collection, vc.DocumentID)
	if err != nil {
		v.Log.Debug().Err(err).Str("collection", vc.Collection).
			Msg("corpus fetch failed, consistency check fails open")
		return nil, nil
	}

	index := make(map[string][]triple.Sibling, len(siblings))
	for _, s := range siblings {
		if !s.Usable() {
			continue
		}
		k := s.Key()
		index[k] = append(index[k], s)
	}

	var out []report.Violation
	for _, t := range current {
		for _, s := range index[t.Key()] {
			if valuesAgree(t.Object.Value, s.Object.Value, v.Tolerance) {
				continue
			}
			out = append(out, report.Violation{
				RuleID:   RuleID,
				Severity: report.SeverityError,
				Text: fmt.Sprintf("fact %q of %q contradicts document %s: %q here vs %q there",
					t.Predicate.Relation, t.Subject.Label, s.SourceDocumentID,
					t.Object.Value, s.Object.Value),
				Suggestion: fmt.Sprintf("align the value with document %s or correct that document first", s.SourceDocumentID),
				Category:   "consistency",
			})
		}
	}
	return out, nil
}

// valuesAgree compares two declared values: exact match after
// normalization, or numerically within tolerance of the larger magnitude.
func valuesAgree(a, b string, tolerance float64) bool {
	na, nb := triple.Normalize(a), triple.Normalize(b)
	if na == nb {
		return true
	}
	fa, errA := parseNumber(na)
	fb, errB := parseNumber(nb)
	if errA != nil || errB != nil {
		return false
	}
	diff := fa - fb
	if diff < 0 {
		diff = -diff
	}
	larger := fa
	if fb > fa {
		larger = fb
	}
	if larger < 0 {
		larger = -larger
	}
	return diff <= tolerance*larger
}

// parseNumber accepts plain numbers possibly wrapped in units or thousands
// separators: "330", "1,5", "12 kg", "€ 1200".
func parseNumber(s string) (float64, error) {
	fields := strings.Fields(s)
	for _, f := range fields {
		f = strings.Trim(f, "€$£%")
		f = strings.ReplaceAll(f, ",", ".")
		if f == "" {
			continue
		}
		if n, err := strconv.ParseFloat(f, 64); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("not numeric: %q", s)
}
