package rules

import (
	"fmt"
	"regexp"

	"github.com/hyperifyio/contentlint/internal/lang"
	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/textseg"
)

// PassiveVoice flags content whose active-voice ratio over qualifying
// sentences drops below the target. Sentences under the minimum word count
// and definitional passives ("X is defined as ...") do not qualify.
type PassiveVoice struct {
	T Thresholds
}

// Check implements the validator contract. The target boundary is
// inclusive: a ratio exactly at ActiveVoiceTarget passes.
func (p PassiveVoice) Check(content string, vc *report.Context) []report.Violation {
	ps, _ := lang.ForLanguage(vc.Language)
	sentences := textseg.Sentences(content, ps)

	qualifying := 0
	passive := 0
	firstPassive := -1
	var firstPassiveText string

	for _, s := range sentences {
		if textseg.WordCount(s.Text) < p.T.MinSentenceWords {
			continue
		}
		if matchesAny(ps.AllowedPassive, s.Text) {
			continue
		}
		qualifying++
		if matchesAny(ps.Passive, s.Text) {
			passive++
			if firstPassive < 0 {
				firstPassive = s.Start
				firstPassiveText = s.Text
			}
		}
	}

	if qualifying < p.T.MinQualifyingSentences {
		return nil
	}
	active := float64(qualifying-passive) / float64(qualifying)
	if active >= p.T.ActiveVoiceTarget {
		return nil
	}

	pos := 0
	if firstPassive > 0 {
		pos = firstPassive
	}
	return []report.Violation{{
		RuleID:   RuleActiveVoice,
		Severity: report.SeverityWarning,
		Text: fmt.Sprintf("active voice ratio %.2f below target %.2f (%d of %d qualifying sentences passive), e.g. %q",
			active, p.T.ActiveVoiceTarget, passive, qualifying, excerpt(firstPassiveText, 80)),
		Position:   pos,
		Suggestion: "rewrite passive constructions with the actor as the subject",
		Category:   "style",
	}}
}

func matchesAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
