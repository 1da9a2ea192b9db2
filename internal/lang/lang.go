// Package lang holds the per-language pattern sets driving every linguistic
// check. All sets share one shape: adding a language is purely additive data
// and never changes a check's algorithm. Sets are built once at package init
// and treated as immutable for the process lifetime.
package lang

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Formula selects the grade-level transform applied by the readability
// check. Non-Flesch-Kincaid formulas produce a 0-100 ease score that the
// check maps onto the shared 0-20 grade scale.
type Formula int

const (
	FormulaFleschKincaid Formula = iota
	FormulaBrouwer
	FormulaFernandezHuerta
	FormulaGulpease
)

// PatternSet is the full heuristic vocabulary for one language.
type PatternSet struct {
	Name string // canonical human-readable name, lowercase
	Code string // BCP 47 base code

	// Passive matches passive-voice constructions; AllowedPassive matches
	// definitional passives that do not count against the active-voice
	// target ("X is defined as ...").
	Passive        []*regexp.Regexp
	AllowedPassive []*regexp.Regexp

	StopWords        map[string]struct{}
	Transitions      []string
	WeakConnectors   []string
	ChainingPronouns map[string]struct{}

	// Abbreviations are sentence-internal tokens (lowercase, no trailing
	// dot) whose period must not end a sentence: "dr", "etc", "e.g".
	Abbreviations map[string]struct{}

	// Vowels lists the runes counted as vowels for syllable-group counting.
	Vowels string
	// SyllableAdjust adds a per-occurrence delta for vowel sequences the
	// group count gets wrong (hiatus like "ia" is two syllables, not one).
	SyllableAdjust map[string]int
	// SilentFinalE enables the English silent-e / "-ed" / "-es" endings
	// correction.
	SilentFinalE bool

	Formula Formula
}

// IsStopWord reports whether the lowercase word is a stop word in this set.
func (p *PatternSet) IsStopWord(w string) bool {
	_, ok := p.StopWords[w]
	return ok
}

// IsChainingPronoun reports whether the lowercase word opens a sentence by
// referring back to the previous one.
func (p *PatternSet) IsChainingPronoun(w string) bool {
	_, ok := p.ChainingPronouns[w]
	return ok
}

// IsTransition reports whether the lowercase phrase is a known transition
// phrase (exact match).
func (p *PatternSet) IsTransition(phrase string) bool {
	for _, t := range p.Transitions {
		if t == phrase {
			return true
		}
	}
	return false
}

// aliases maps human-readable language names onto set codes; the original
// data set was keyed by names like "English"/"Nederlands", so both English
// and native names resolve.
var aliases = map[string]string{
	"english":    "en",
	"french":     "fr",
	"français":   "fr",
	"francais":   "fr",
	"spanish":    "es",
	"español":    "es",
	"espanol":    "es",
	"italian":    "it",
	"italiano":   "it",
	"dutch":      "nl",
	"nederlands": "nl",
	"german":     "de",
	"deutsch":    "de",
}

// ForLanguage selects the pattern set for a language key, which may be a
// human-readable name ("Dutch", "Nederlands") or a BCP 47 tag ("nl",
// "nl-BE"). The second return is false when no dedicated set exists and the
// English set was returned as fallback.
func ForLanguage(key string) (*PatternSet, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return sets["en"], false
	}
	if code, ok := aliases[k]; ok {
		return sets[code], true
	}
	if ps, ok := sets[k]; ok {
		return ps, true
	}
	if tag, err := language.Parse(k); err == nil {
		base, _ := tag.Base()
		if ps, ok := sets[base.String()]; ok {
			return ps, true
		}
	}
	return sets["en"], false
}

// Supported returns the codes with a dedicated pattern set, for diagnostics.
func Supported() []string {
	out := make([]string, 0, len(sets))
	for code := range sets {
		out = append(out, code)
	}
	return out
}

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}
