package rules

import (
	"strings"
	"testing"

	"github.com/hyperifyio/contentlint/internal/lang"
	"github.com/hyperifyio/contentlint/internal/report"
)

func TestInformationDensity_StopWordRatio(t *testing.T) {
	// 30 words, all stop words.
	content := strings.TrimSpace(strings.Repeat("the of and to in is was for on with ", 3))
	vc := &report.Context{Language: "en", Stage: report.StageSection}
	got := (InformationDensity{T: DefaultThresholds()}).Check(content, vc)
	if len(got) != 1 {
		t.Fatalf("expected one violation, got %+v", got)
	}
	if got[0].RuleID != RuleStopWordRatio || got[0].Severity != report.SeverityWarning {
		t.Fatalf("violation %+v", got[0])
	}
}

func TestInformationDensity_FactDensityLow(t *testing.T) {
	th := DefaultThresholds()
	th.MinFactSample = 20
	th.MinStopWordSample = 1000 // isolate the fact detector

	content := strings.TrimSpace(strings.Repeat("alpha beta gamma delta epsilon ", 5))
	vc := &report.Context{Language: "en", Stage: report.StageSection}
	got := (InformationDensity{T: th}).Check(content, vc)
	if len(got) != 1 || got[0].RuleID != RuleFactDensity {
		t.Fatalf("got %+v", got)
	}
}

func TestInformationDensity_ConcreteTokensPass(t *testing.T) {
	th := DefaultThresholds()
	th.MinFactSample = 20
	th.MinStopWordSample = 1000

	content := strings.TrimSpace(strings.Repeat("alpha beta gamma delta epsilon ", 5)) +
		" Use `Config` and `Loader` with version 2.0 at 45 percent."
	vc := &report.Context{Language: "en", Stage: report.StageSection}
	if got := (InformationDensity{T: th}).Check(content, vc); got != nil {
		t.Fatalf("concrete tokens must satisfy the density floor, got %+v", got)
	}
}

func TestCountFacts(t *testing.T) {
	ps := mustEnglish(t)
	// One code span, three numeric tokens, two mid-sentence proper nouns.
	// "Acme" opens the second sentence and therefore does not count.
	content := "The `Runner` moved 12 km in 3.5 hours with Acme gear. Acme shipped it."
	if got := countFacts(content, ps); got != 6 {
		t.Fatalf("countFacts = %d, want 6", got)
	}
}

func mustEnglish(t *testing.T) *lang.PatternSet {
	t.Helper()
	ps, ok := lang.ForLanguage("en")
	if !ok {
		t.Fatalf("english set missing")
	}
	return ps
}
