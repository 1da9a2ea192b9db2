package rules

import (
	"strings"
	"testing"

	"github.com/hyperifyio/contentlint/internal/report"
)

const (
	activeSentence       = "The team writes the report quickly."
	passiveSentence      = "The report was written by the team."
	definitionalSentence = "The widget is defined as a small tool."
)

func join(sentences ...string) string {
	return strings.Join(sentences, " ")
}

func TestPassiveVoice_ExactTargetPasses(t *testing.T) {
	// 7 active + 3 passive over 10 qualifying sentences: ratio exactly 0.70.
	var parts []string
	for i := 0; i < 7; i++ {
		parts = append(parts, activeSentence)
	}
	for i := 0; i < 3; i++ {
		parts = append(parts, passiveSentence)
	}
	parts = append(parts, definitionalSentence, "Run it now.")

	vc := &report.Context{Language: "en", Stage: report.StageSection}
	if got := (PassiveVoice{T: DefaultThresholds()}).Check(join(parts...), vc); got != nil {
		t.Fatalf("0.70 must pass, got %+v", got)
	}
}

func TestPassiveVoice_BelowTargetWarns(t *testing.T) {
	var parts []string
	for i := 0; i < 6; i++ {
		parts = append(parts, activeSentence)
	}
	for i := 0; i < 4; i++ {
		parts = append(parts, passiveSentence)
	}

	vc := &report.Context{Language: "en", Stage: report.StageSection}
	got := (PassiveVoice{T: DefaultThresholds()}).Check(join(parts...), vc)
	if len(got) != 1 {
		t.Fatalf("expected one violation, got %+v", got)
	}
	v := got[0]
	if v.RuleID != RuleActiveVoice || v.Severity != report.SeverityWarning {
		t.Fatalf("violation %+v", v)
	}
	if v.Position == 0 {
		t.Fatalf("position must point at the first passive sentence")
	}
}

func TestPassiveVoice_TooFewQualifyingSentences(t *testing.T) {
	vc := &report.Context{Language: "en", Stage: report.StageSection}
	content := join(passiveSentence, passiveSentence)
	if got := (PassiveVoice{T: DefaultThresholds()}).Check(content, vc); got != nil {
		t.Fatalf("under the sample gate nothing is flagged, got %+v", got)
	}
}

func TestPassiveVoice_DefinitionalDoesNotQualify(t *testing.T) {
	// All qualifying sentences are definitional: no sample, no violation.
	content := join(definitionalSentence, definitionalSentence, definitionalSentence, definitionalSentence)
	vc := &report.Context{Language: "en", Stage: report.StageSection}
	if got := (PassiveVoice{T: DefaultThresholds()}).Check(content, vc); got != nil {
		t.Fatalf("got %+v", got)
	}
}
