package rules

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/textseg"
	"github.com/hyperifyio/contentlint/internal/triple"
)

// EAVCoverage verifies that the context's semantic triples actually surface
// in the content: placement (distinctive facts present, unique ones early),
// density (fact mentions per 100 words), and distribution (facts spread
// across paragraphs rather than clustered). Triples without a usable
// subject/relation are skipped silently.
type EAVCoverage struct {
	T Thresholds
}

// Check implements the validator contract.
func (e EAVCoverage) Check(content string, vc *report.Context) []report.Violation {
	var usable []triple.Triple
	for _, t := range vc.Triples {
		if t.Usable() {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return nil
	}

	norm := triple.Normalize(content)
	if norm == "" {
		return nil
	}
	var out []report.Violation

	// Placement: UNIQUE and ROOT facts must appear; UNIQUE in the first
	// third of the content, where readers and crawlers establish topic.
	firstThird := len(norm) / 3
	for _, t := range usable {
		cat := t.Predicate.Category
		if cat != triple.CategoryUnique && cat != triple.CategoryRoot {
			continue
		}
		pos := firstMention(norm, t)
		if pos < 0 {
			out = append(out, report.Violation{
				RuleID:   RuleEAVPlacement,
				Severity: report.SeverityError,
				Text: fmt.Sprintf("%s fact missing: %s %s %s",
					strings.ToLower(string(cat)), t.Subject.Label, t.Predicate.Relation, t.Object.Value),
				Suggestion: fmt.Sprintf("state that %s %s %s", t.Subject.Label, t.Predicate.Relation, t.Object.Value),
				Category:   "eav",
			})
			continue
		}
		if cat == triple.CategoryUnique && pos > firstThird {
			out = append(out, report.Violation{
				RuleID:   RuleEAVPlacement,
				Severity: report.SeverityWarning,
				Text: fmt.Sprintf("unique fact about %q appears late in the content",
					t.Subject.Label),
				Position:   pos,
				Suggestion: "move the distinguishing fact into the opening third",
				Category:   "eav",
			})
		}
	}

	words := textseg.WordCount(content)
	if words >= e.T.MinFactSample {
		mentions := 0
		for _, t := range usable {
			mentions += mentionCount(norm, t)
		}
		per100 := float64(mentions) / float64(words) * 100
		if per100 < e.T.MinEAVDensity {
			out = append(out, report.Violation{
				RuleID:   RuleEAVDensity,
				Severity: report.SeverityWarning,
				Text: fmt.Sprintf("entity-fact density %.1f per 100 words below minimum %.1f",
					per100, e.T.MinEAVDensity),
				Suggestion: "work more of the reference facts into the running text",
				Category:   "eav",
			})
		}
	}

	paragraphs := textseg.Paragraphs(content)
	if len(paragraphs) >= 3 {
		touched := 0
		for _, p := range paragraphs {
			pn := triple.Normalize(p.Text)
			for _, t := range usable {
				if firstMention(pn, t) >= 0 {
					touched++
					break
				}
			}
		}
		spread := float64(touched) / float64(len(paragraphs))
		if spread < e.T.MinEAVSpread {
			out = append(out, report.Violation{
				RuleID:   RuleEAVDistribution,
				Severity: report.SeverityInfo,
				Text: fmt.Sprintf("facts concentrate in %d of %d paragraphs (spread %.2f below %.2f)",
					touched, len(paragraphs), spread, e.T.MinEAVSpread),
				Suggestion: "distribute supporting facts across the section instead of front-loading them",
				Category:   "eav",
			})
		}
	}
	return out
}

// firstMention returns the byte offset of the earliest mention of the
// triple's entity in normalized text, or -1.
func firstMention(norm string, t triple.Triple) int {
	best := -1
	for _, m := range t.Mentions() {
		if i := strings.Index(norm, m); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	return best
}

func mentionCount(norm string, t triple.Triple) int {
	n := 0
	for _, m := range t.Mentions() {
		n += strings.Count(norm, m)
	}
	return n
}
