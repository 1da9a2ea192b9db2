package report

import "testing"

func TestBuild_OrdersByPositionThenRule(t *testing.T) {
	vs := []Violation{
		{RuleID: "B_RULE", Severity: SeverityWarning, Position: 10},
		{RuleID: "A_RULE", Severity: SeverityError, Position: 10, Suggestion: "fix"},
		{RuleID: "C_RULE", Severity: SeverityInfo, Position: 2},
	}
	r := Build(vs, false)
	got := []string{r.Violations[0].RuleID, r.Violations[1].RuleID, r.Violations[2].RuleID}
	want := []string{"C_RULE", "A_RULE", "B_RULE"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
	if r.Errors != 1 || r.Warnings != 1 || r.Infos != 1 {
		t.Fatalf("counts %d/%d/%d", r.Errors, r.Warnings, r.Infos)
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	vs := []Violation{
		{RuleID: "B", Position: 5},
		{RuleID: "A", Position: 1},
	}
	Build(vs, false)
	if vs[0].RuleID != "B" {
		t.Fatalf("input slice reordered")
	}
}

func TestCollapseByRule(t *testing.T) {
	r := Build([]Violation{
		{RuleID: "X", Position: 1},
		{RuleID: "X", Position: 9},
		{RuleID: "Y", Position: 4},
	}, false)
	c := r.CollapseByRule()
	if len(c) != 2 {
		t.Fatalf("collapsed to %d entries, want 2", len(c))
	}
	if c[0].RuleID != "X" || c[0].Position != 1 {
		t.Fatalf("kept %+v, want first X", c[0])
	}
}

func TestContextValidate(t *testing.T) {
	var nilCtx *Context
	if err := nilCtx.Validate(); err == nil {
		t.Fatalf("nil context must be invalid")
	}
	if err := (&Context{Stage: "weird"}).Validate(); err == nil {
		t.Fatalf("unknown stage must be invalid")
	}
	if err := (&Context{Stage: StageSection}).Validate(); err != nil {
		t.Fatalf("section stage: %v", err)
	}
}

func TestWholeDocumentPass(t *testing.T) {
	cases := []struct {
		ctx  Context
		want bool
	}{
		{Context{Stage: StageDocument, Section: SectionMeta{Ordinal: 5}}, true},
		{Context{Stage: StageSection, Section: SectionMeta{Ordinal: 0}}, true},
		{Context{Stage: StageSection, Section: SectionMeta{Ordinal: 3, Zone: "Introduction"}}, true},
		{Context{Stage: StageSection, Section: SectionMeta{Ordinal: 3, Zone: "body"}}, false},
	}
	for i, c := range cases {
		if got := c.ctx.WholeDocumentPass(); got != c.want {
			t.Fatalf("case %d: got %v, want %v", i, got, c.want)
		}
	}
}

func TestParseAudience(t *testing.T) {
	if ParseAudience(" Technical ") != AudienceTechnical {
		t.Fatalf("technical not recognized")
	}
	if ParseAudience("marketing team") != AudienceGeneral {
		t.Fatalf("unknown audience must default to general")
	}
}
