package judge

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/contentlint/internal/lang"
	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/textseg"
)

// Per-language marker words for the deterministic fallbacks. These are
// judge-local because they express rule semantics, not general language
// structure like the pattern sets do.
var firstPersonMarkers = map[string][]string{
	"en": {"we", "our", "us", "i", "my"},
	"fr": {"nous", "notre", "nos", "je", "mon", "ma"},
	"es": {"nosotros", "nuestro", "nuestra", "nuestros", "nuestras", "yo"},
	"it": {"noi", "nostro", "nostra", "nostri", "nostre", "io"},
	"nl": {"we", "wij", "ons", "onze", "ik", "mijn"},
	"de": {"wir", "unser", "unsere", "ich", "mein"},
}

var exampleMarkers = map[string][]string{
	"en": {"for example", "for instance", "e.g.", "such as", "consider the case"},
	"fr": {"par exemple", "notamment", "comme dans le cas"},
	"es": {"por ejemplo", "como en el caso", "tales como"},
	"it": {"per esempio", "ad esempio", "come nel caso"},
	"nl": {"bijvoorbeeld", "zoals", "neem het geval"},
	"de": {"zum beispiel", "beispielsweise", "etwa", "wie im fall"},
}

var copulaMarkers = map[string][]string{
	"en": {" is ", " are ", " means ", " refers to "},
	"fr": {" est ", " sont ", " désigne ", " signifie "},
	"es": {" es ", " son ", " significa ", " se refiere "},
	"it": {" è ", " sono ", " significa ", " indica "},
	"nl": {" is ", " zijn ", " betekent ", " verwijst naar "},
	"de": {" ist ", " sind ", " bedeutet ", " bezeichnet "},
}

var fluffMarkers = map[string][]string{
	"en": {"world-class", "revolutionary", "best-in-class", "cutting-edge", "unparalleled", "game-changing", "the best "},
	"fr": {"révolutionnaire", "inégalé", "le meilleur "},
	"es": {"revolucionario", "inigualable", "el mejor "},
	"it": {"rivoluzionario", "impareggiabile", "il migliore "},
	"nl": {"revolutionair", "ongeëvenaard", "de beste ", "toonaangevend"},
	"de": {"revolutionär", "unübertroffen", "der beste ", "weltklasse"},
}

func markersFor(table map[string][]string, language string) []string {
	ps, _ := lang.ForLanguage(language)
	if m, ok := table[ps.Code]; ok {
		return m
	}
	return table["en"]
}

func fallbackFirstPerson(content string, vc *report.Context) []report.Violation {
	words := textseg.Words(content)
	if len(words) < 30 {
		return nil
	}
	markers := markersFor(firstPersonMarkers, vc.Language)
	for _, w := range words {
		lw := strings.ToLower(w)
		for _, m := range markers {
			if lw == m {
				return nil
			}
		}
	}
	return []report.Violation{{
		RuleID:     "FIRST_PERSON_VOICE",
		Severity:   report.SeverityWarning,
		Text:       "no first-person voice found in the content",
		Suggestion: "speak as the organisation: 'we recommend', 'our approach'",
		Category:   "voice",
	}}
}

func fallbackConcreteExamples(content string, vc *report.Context) []report.Violation {
	if textseg.WordCount(content) < 80 {
		return nil
	}
	low := strings.ToLower(content)
	for _, m := range markersFor(exampleMarkers, vc.Language) {
		if strings.Contains(low, m) {
			return nil
		}
	}
	return []report.Violation{{
		RuleID:     "CONCRETE_EXAMPLES",
		Severity:   report.SeverityWarning,
		Text:       "no example markers found; the content stays abstract",
		Suggestion: "add a worked example or a named case that shows the claim in practice",
		Category:   "substance",
	}}
}

func fallbackDefinitionOpening(content string, vc *report.Context) []report.Violation {
	ps, _ := lang.ForLanguage(vc.Language)
	sentences := textseg.Sentences(content, ps)
	if len(sentences) == 0 {
		return nil
	}
	first := sentences[0].Text
	n := textseg.WordCount(first)
	definitional := false
	low := " " + strings.ToLower(first) + " "
	for _, m := range markersFor(copulaMarkers, vc.Language) {
		if strings.Contains(low, m) {
			definitional = true
			break
		}
	}
	if definitional && n >= 40 && n <= 60 {
		return nil
	}
	return []report.Violation{{
		RuleID:   "DEFINITION_OPENING",
		Severity: report.SeverityWarning,
		Text: fmt.Sprintf("opening sentence is %d words and %s definitional",
			n, map[bool]string{true: "is", false: "is not"}[definitional]),
		Position:   sentences[0].Start,
		Suggestion: "open with one definitional sentence of 40-60 words naming the subject",
		Category:   "structure",
	}}
}

func fallbackMarketingFluff(content string, vc *report.Context) []report.Violation {
	low := strings.ToLower(content)
	for _, m := range markersFor(fluffMarkers, vc.Language) {
		if i := strings.Index(low, m); i >= 0 {
			return []report.Violation{{
				RuleID:     "MARKETING_FLUFF",
				Severity:   report.SeverityWarning,
				Text:       fmt.Sprintf("marketing superlative %q", strings.TrimSpace(m)),
				Position:   i,
				Suggestion: "replace superlatives with verifiable, specific claims",
				Category:   "tone",
			}}
		}
	}
	return nil
}
