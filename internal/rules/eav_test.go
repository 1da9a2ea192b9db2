package rules

import (
	"strings"
	"testing"

	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/triple"
)

func uniqueTriple() triple.Triple {
	return triple.Triple{
		Subject:   triple.Subject{Label: "Acme Widget"},
		Predicate: triple.Predicate{Relation: "weight", Category: triple.CategoryUnique},
		Object:    triple.Object{Value: "12 kg"},
	}
}

func TestEAVCoverage_MissingUniqueFactErrors(t *testing.T) {
	vc := &report.Context{Language: "en", Stage: report.StageSection, Triples: []triple.Triple{uniqueTriple()}}
	got := (EAVCoverage{T: DefaultThresholds()}).Check("Nothing about the product here at all.", vc)
	if len(got) != 1 {
		t.Fatalf("expected one violation, got %+v", got)
	}
	v := got[0]
	if v.RuleID != RuleEAVPlacement || v.Severity != report.SeverityError {
		t.Fatalf("violation %+v", v)
	}
	if v.Suggestion != "state that Acme Widget weight 12 kg" {
		t.Fatalf("suggestion %q", v.Suggestion)
	}
}

func TestEAVCoverage_LateUniqueFactWarns(t *testing.T) {
	content := strings.Repeat("filler words occupy this opening stretch. ", 10) +
		"The Acme Widget closes the piece."
	vc := &report.Context{Language: "en", Stage: report.StageSection, Triples: []triple.Triple{uniqueTriple()}}
	got := (EAVCoverage{T: DefaultThresholds()}).Check(content, vc)
	if len(got) != 1 {
		t.Fatalf("got %+v", got)
	}
	if got[0].RuleID != RuleEAVPlacement || got[0].Severity != report.SeverityWarning {
		t.Fatalf("violation %+v", got[0])
	}
}

func TestEAVCoverage_EarlyMentionPasses(t *testing.T) {
	vc := &report.Context{Language: "en", Stage: report.StageSection, Triples: []triple.Triple{uniqueTriple()}}
	got := (EAVCoverage{T: DefaultThresholds()}).Check("The Acme Widget ships this month.", vc)
	if got != nil {
		t.Fatalf("got %+v", got)
	}
}

func TestEAVCoverage_SynonymCountsAsMention(t *testing.T) {
	tr := uniqueTriple()
	tr.Synonyms = []string{"the widget"}
	vc := &report.Context{Language: "en", Stage: report.StageSection, Triples: []triple.Triple{tr}}
	if got := (EAVCoverage{T: DefaultThresholds()}).Check("The widget ships this month.", vc); got != nil {
		t.Fatalf("got %+v", got)
	}
}

func TestEAVCoverage_ConcentratedFactsInfo(t *testing.T) {
	tr := uniqueTriple()
	tr.Predicate.Category = triple.CategoryCommon // skip the placement check
	content := "Acme Widget opens the piece.\n\n" +
		"Second paragraph says nothing factual.\n\n" +
		"Third paragraph stays vague too.\n\n" +
		"Fourth paragraph wraps it up."
	vc := &report.Context{Language: "en", Stage: report.StageSection, Triples: []triple.Triple{tr}}
	got := (EAVCoverage{T: DefaultThresholds()}).Check(content, vc)
	if len(got) != 1 {
		t.Fatalf("got %+v", got)
	}
	if got[0].RuleID != RuleEAVDistribution || got[0].Severity != report.SeverityInfo {
		t.Fatalf("violation %+v", got[0])
	}
}

func TestEAVCoverage_NoUsableTriples(t *testing.T) {
	vc := &report.Context{
		Language: "en",
		Stage:    report.StageSection,
		Triples:  []triple.Triple{{Object: triple.Object{Value: "1"}}},
	}
	if got := (EAVCoverage{T: DefaultThresholds()}).Check("Anything at all.", vc); got != nil {
		t.Fatalf("got %+v", got)
	}
}
