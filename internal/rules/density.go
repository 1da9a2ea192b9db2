package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/hyperifyio/contentlint/internal/lang"
	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/textseg"
)

// InformationDensity combines two filler detectors: a stop-word ratio over
// the language's stop-word set, and a fact-density estimate counting
// concrete tokens (numbers with units, proper nouns off sentence starts,
// inline code) per 100 words.
type InformationDensity struct {
	T Thresholds
}

var (
	numberTokenRe  = regexp.MustCompile(`^\d+(?:[.,]\d+)?[%€$£]?$|^\d+(?:[.,]\d+)?[a-z]{1,4}$`)
	inlineCodeRe   = regexp.MustCompile("`[^`\n]+`")
	currencyLeadRe = regexp.MustCompile(`^[€$£]\d`)
)

// Check implements the validator contract.
func (d InformationDensity) Check(content string, vc *report.Context) []report.Violation {
	ps, _ := lang.ForLanguage(vc.Language)
	words := textseg.Words(content)
	var out []report.Violation

	if len(words) >= d.T.MinStopWordSample {
		stop := 0
		for _, w := range words {
			if ps.IsStopWord(strings.ToLower(w)) {
				stop++
			}
		}
		ratio := float64(stop) / float64(len(words))
		if ratio > d.T.MaxStopWordRatio {
			out = append(out, report.Violation{
				RuleID:   RuleStopWordRatio,
				Severity: report.SeverityWarning,
				Text: fmt.Sprintf("stop-word ratio %.2f exceeds maximum %.2f (%d of %d words)",
					ratio, d.T.MaxStopWordRatio, stop, len(words)),
				Suggestion: "cut connective filler and let concrete nouns and verbs carry the sentences",
				Category:   "density",
			})
		}
	}

	if len(words) >= d.T.MinFactSample {
		facts := countFacts(content, ps)
		per100 := float64(facts) / float64(len(words)) * 100
		if per100 < d.T.MinFactDensity {
			out = append(out, report.Violation{
				RuleID:   RuleFactDensity,
				Severity: report.SeverityWarning,
				Text: fmt.Sprintf("fact density %.1f per 100 words below minimum %.1f (%d concrete tokens in %d words)",
					per100, d.T.MinFactDensity, facts, len(words)),
				Suggestion: "add specific figures, named entities, or concrete examples",
				Category:   "density",
			})
		}
	}
	return out
}

// countFacts estimates concrete information: numeric tokens (optionally
// with a unit), capitalized tokens that do not open a sentence, and inline
// code spans.
func countFacts(content string, ps *lang.PatternSet) int {
	facts := len(inlineCodeRe.FindAllString(content, -1))
	for _, s := range textseg.Sentences(content, ps) {
		words := textseg.Words(s.Text)
		for i, w := range words {
			if isNumericToken(w) {
				facts++
				continue
			}
			if i == 0 {
				continue // sentence-initial capitalization is not signal
			}
			r := []rune(w)
			if unicode.IsUpper(r[0]) {
				facts++
			}
		}
	}
	return facts
}

func isNumericToken(w string) bool {
	lw := strings.ToLower(w)
	return numberTokenRe.MatchString(lw) || currencyLeadRe.MatchString(w)
}
