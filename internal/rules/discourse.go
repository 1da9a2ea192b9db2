package rules

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/contentlint/internal/lang"
	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/textseg"
)

// DiscourseChaining measures sentence-to-sentence flow: a sentence chains
// when it opens with a referring pronoun or repeats a significant noun
// phrase from its predecessor. Content below the chained/total target reads
// as disconnected statements.
type DiscourseChaining struct {
	T Thresholds
}

// verbishSuffixes filters out words that are likely verbs when collecting
// significant nouns from a sentence.
var verbishSuffixes = []string{"ing", "ed", "ly", "ise", "ize", "ate", "ify"}

// Check implements the validator contract. A single-sentence document
// trivially passes: there are no pairs to evaluate.
func (d DiscourseChaining) Check(content string, vc *report.Context) []report.Violation {
	ps, _ := lang.ForLanguage(vc.Language)
	sentences := textseg.Sentences(content, ps)
	if len(sentences) < 2 {
		return nil
	}

	pairs := 0
	chained := 0
	firstBreak := -1
	for i := 1; i < len(sentences); i++ {
		pairs++
		if chains(sentences[i-1].Text, sentences[i].Text, ps) {
			chained++
		} else if firstBreak < 0 {
			firstBreak = sentences[i].Start
		}
	}

	ratio := float64(chained) / float64(pairs)
	if ratio >= d.T.ChainingTarget {
		return nil
	}
	pos := 0
	if firstBreak > 0 {
		pos = firstBreak
	}
	return []report.Violation{{
		RuleID:   RuleDiscourse,
		Severity: report.SeverityWarning,
		Text: fmt.Sprintf("discourse chaining ratio %.2f below target %.2f (%d of %d sentence pairs chained)",
			ratio, d.T.ChainingTarget, chained, pairs),
		Position:   pos,
		Suggestion: "open sentences by referring back to the previous sentence's subject or object",
		Category:   "flow",
	}}
}

func chains(prev, cur string, ps *lang.PatternSet) bool {
	curWords := textseg.Words(cur)
	if len(curWords) == 0 {
		return false
	}
	if ps.IsChainingPronoun(strings.ToLower(curWords[0])) {
		return true
	}
	for _, noun := range significantWords(prev, ps) {
		for _, w := range curWords {
			if strings.EqualFold(w, noun) {
				return true
			}
		}
	}
	return false
}

// significantWords picks the content words of a sentence that plausibly
// name things: not stop words, longer than three characters, and not
// shaped like verbs.
func significantWords(sentence string, ps *lang.PatternSet) []string {
	var out []string
	for _, w := range textseg.Words(sentence) {
		lw := strings.ToLower(w)
		if len([]rune(lw)) <= 3 || ps.IsStopWord(lw) {
			continue
		}
		if hasVerbishSuffix(lw) {
			continue
		}
		out = append(out, lw)
	}
	return out
}

func hasVerbishSuffix(w string) bool {
	for _, suf := range verbishSuffixes {
		if strings.HasSuffix(w, suf) && len(w) > len(suf)+2 {
			return true
		}
	}
	return false
}
