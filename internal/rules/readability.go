package rules

import (
	"fmt"
	"unicode"

	"github.com/hyperifyio/contentlint/internal/lang"
	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/textseg"
)

// Readability scores content on a 0-20 grade scale using the language's
// formula and compares it against the audience's target band. Too complex
// is an error (readers bounce), too simple only a warning.
type Readability struct {
	T Thresholds
}

// Check implements the validator contract.
func (r Readability) Check(content string, vc *report.Context) []report.Violation {
	ps, _ := lang.ForLanguage(vc.Language)
	words := textseg.Words(content)
	if len(words) < r.T.MinReadabilityWords {
		return nil // insufficient signal, not a failure
	}
	sentences := textseg.Sentences(content, ps)
	if len(sentences) == 0 {
		return nil
	}

	grade := GradeLevel(content, words, len(sentences), ps)
	band := r.T.GradeRangeFor(vc.Audience)

	switch {
	case grade > band.Max:
		return []report.Violation{{
			RuleID:   RuleReadability,
			Severity: report.SeverityError,
			Text: fmt.Sprintf("readability grade %.1f exceeds the %s target %.0f–%.0f",
				grade, vc.Audience, band.Min, band.Max),
			Suggestion: "shorten sentences and prefer common words to bring the grade level down",
			Category:   "readability",
		}}
	case grade < band.Min:
		return []report.Violation{{
			RuleID:   RuleReadability,
			Severity: report.SeverityWarning,
			Text: fmt.Sprintf("readability grade %.1f is below the %s target %.0f–%.0f",
				grade, vc.Audience, band.Min, band.Max),
			Suggestion: "add depth and precision; the text reads simpler than this audience expects",
			Category:   "readability",
		}}
	}
	return nil
}

// GradeLevel computes the language-appropriate grade score clamped to the
// shared 0-20 scale. Flesch-Kincaid yields a grade directly; the Dutch,
// Spanish, and Italian formulas yield 0-100 ease scores mapped down via
// (100-score)/5.
func GradeLevel(content string, words []string, sentenceCount int, ps *lang.PatternSet) float64 {
	if sentenceCount < 1 {
		sentenceCount = 1
	}
	w := float64(len(words))
	s := float64(sentenceCount)
	syl := float64(textseg.SyllableTotal(words, ps))

	var grade float64
	switch ps.Formula {
	case lang.FormulaBrouwer:
		// Brouwer Leesindex A.
		ease := 195 - 66.7*(syl/w) - 2*(w/s)
		grade = easeToGrade(ease)
	case lang.FormulaFernandezHuerta:
		ease := 206.84 - 60*(syl/w) - 1.02*(w/s)
		grade = easeToGrade(ease)
	case lang.FormulaGulpease:
		letters := 0.0
		for _, word := range words {
			for _, r := range word {
				if unicode.IsLetter(r) {
					letters++
				}
			}
		}
		ease := 89 + (300*s-10*letters)/w
		grade = easeToGrade(ease)
	default:
		grade = 0.39*(w/s) + 11.8*(syl/w) - 15.59
	}

	if grade < 0 {
		return 0
	}
	if grade > 20 {
		return 20
	}
	return grade
}

func easeToGrade(ease float64) float64 {
	if ease > 100 {
		ease = 100
	}
	if ease < 0 {
		ease = 0
	}
	return (100 - ease) / 5
}
