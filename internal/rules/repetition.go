package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hyperifyio/contentlint/internal/lang"
	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/textseg"
)

// SectionRepetition finds phrases recycled across sections of a document.
// It extracts 3-5-word n-grams per section (split on level-2/3 headings)
// and flags any n-gram occurring in two or more distinct sections, unless
// it is a known transition phrase. Runs on whole-document passes only; the
// orchestrator owns that gating.
type SectionRepetition struct {
	T Thresholds
}

// Check implements the validator contract.
func (r SectionRepetition) Check(content string, vc *report.Context) []report.Violation {
	ps, _ := lang.ForLanguage(vc.Language)
	sections := textseg.Sections(content)
	if len(sections) < 2 {
		return nil
	}

	// n-gram -> set of section indices
	where := map[string]map[int]struct{}{}
	for idx, sec := range sections {
		words := textseg.Words(sec.Body)
		for n := 3; n <= 5; n++ {
			for _, g := range textseg.NGrams(words, n) {
				if !hasContentWords(g, ps, 2) {
					continue
				}
				if where[g] == nil {
					where[g] = map[int]struct{}{}
				}
				where[g][idx] = struct{}{}
			}
		}
	}

	var repeated []string
	for g, secs := range where {
		if len(secs) < 2 || ps.IsTransition(g) {
			continue
		}
		repeated = append(repeated, g)
	}
	if len(repeated) == 0 {
		return nil
	}
	sort.Strings(repeated)
	// A repeated 5-gram drags all its sub-grams along; keep the longest.
	repeated = dropSubphrases(repeated)

	out := make([]report.Violation, 0, len(repeated))
	lower := strings.ToLower(content)
	for _, g := range repeated {
		pos := strings.Index(lower, g)
		if pos < 0 {
			pos = 0
		}
		out = append(out, report.Violation{
			RuleID:     RuleRepetition,
			Severity:   report.SeverityWarning,
			Text:       fmt.Sprintf("phrase %q repeats across sections", g),
			Position:   pos,
			Suggestion: "vary the wording or consolidate the repeated point into one section",
			Category:   "repetition",
		})
	}
	return out
}

func hasContentWords(gram string, ps *lang.PatternSet, min int) bool {
	n := 0
	for _, w := range strings.Fields(gram) {
		if !ps.IsStopWord(w) {
			n++
			if n >= min {
				return true
			}
		}
	}
	return false
}

// dropSubphrases removes n-grams fully contained in a longer flagged
// n-gram. Input must be sorted; output preserves order.
func dropSubphrases(grams []string) []string {
	out := make([]string, 0, len(grams))
	for _, g := range grams {
		contained := false
		for _, other := range grams {
			if other != g && strings.Contains(other, g) {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, g)
		}
	}
	return out
}
