package textseg

import (
	"strings"
	"testing"

	"github.com/hyperifyio/contentlint/internal/lang"
)

func englishSet(t *testing.T) *lang.PatternSet {
	t.Helper()
	ps, ok := lang.ForLanguage("en")
	if !ok {
		t.Fatalf("english set missing")
	}
	return ps
}

func TestSentences_AbbreviationsAndDecimals(t *testing.T) {
	ps := englishSet(t)
	text := "Dr. Smith charges 3.5 dollars. We see e.g. this and that. Done."
	got := Sentences(text, ps)
	want := []string{
		"Dr. Smith charges 3.5 dollars.",
		"We see e.g. this and that.",
		"Done.",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d sentences: %+v", len(got), got)
	}
	for i := range want {
		if got[i].Text != want[i] {
			t.Fatalf("sentence %d = %q, want %q", i, got[i].Text, want[i])
		}
	}
}

func TestSentences_Offsets(t *testing.T) {
	ps := englishSet(t)
	text := "First one. Second one."
	got := Sentences(text, ps)
	if len(got) != 2 {
		t.Fatalf("got %d sentences", len(got))
	}
	if got[1].Start != strings.Index(text, "Second") {
		t.Fatalf("second sentence start %d", got[1].Start)
	}
}

func TestSentences_TerminatorsAndNewlines(t *testing.T) {
	ps := englishSet(t)
	got := Sentences("Really? Yes! Sure.\nNext line", ps)
	if len(got) != 4 {
		t.Fatalf("got %d sentences: %+v", len(got), got)
	}
	if got[3].Text != "Next line" {
		t.Fatalf("trailing sentence %q", got[3].Text)
	}
}

func TestSentences_SingleInitial(t *testing.T) {
	ps := englishSet(t)
	got := Sentences("J. Doe wrote it. Then left.", ps)
	if len(got) != 2 || got[0].Text != "J. Doe wrote it." {
		t.Fatalf("got %+v", got)
	}
}

func TestWords(t *testing.T) {
	got := Words("It's a well-known fact, right?")
	want := []string{"It's", "a", "well-known", "fact", "right"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("word %d = %q, want %q", i, got[i], want[i])
		}
	}
	if WordCount("  ") != 0 {
		t.Fatalf("blank text must count zero words")
	}
}

func TestParagraphs(t *testing.T) {
	text := "One.\n\nTwo lines\nhere.\n\n\nThree."
	got := Paragraphs(text)
	if len(got) != 3 {
		t.Fatalf("got %d paragraphs: %+v", len(got), got)
	}
	if got[1].Text != "Two lines\nhere." {
		t.Fatalf("paragraph 1 = %q", got[1].Text)
	}
	if got[0].Start != 0 || got[1].Start != strings.Index(text, "Two") {
		t.Fatalf("starts %d/%d", got[0].Start, got[1].Start)
	}
}

func TestSections(t *testing.T) {
	md := "Intro text.\n\n## First\nBody A\n\n### Sub\nBody B\n\n## Second\nBody C"
	got := Sections(md)
	if len(got) != 4 {
		t.Fatalf("got %d sections: %+v", len(got), got)
	}
	if got[0].Heading != "" || got[0].Body != "Intro text." {
		t.Fatalf("preamble %+v", got[0])
	}
	if got[1].Heading != "First" || got[1].Level != 2 || got[1].Body != "Body A" {
		t.Fatalf("section 1 %+v", got[1])
	}
	if got[2].Heading != "Sub" || got[2].Level != 3 {
		t.Fatalf("section 2 %+v", got[2])
	}
	if got[3].Body != "Body C" {
		t.Fatalf("section 3 %+v", got[3])
	}
}

func TestSections_IgnoresTopLevelHeading(t *testing.T) {
	got := Sections("# Title\nLead.\n\n## Only\nBody")
	if len(got) != 2 {
		t.Fatalf("got %d sections: %+v", len(got), got)
	}
	if !strings.Contains(got[0].Body, "# Title") {
		t.Fatalf("level-1 heading must stay in the preamble: %+v", got[0])
	}
}

func TestNGrams(t *testing.T) {
	got := NGrams([]string{"A", "b", "C"}, 2)
	if len(got) != 2 || got[0] != "a b" || got[1] != "b c" {
		t.Fatalf("got %v", got)
	}
	if NGrams([]string{"one"}, 2) != nil {
		t.Fatalf("too-short input must yield nil")
	}
}

func TestSyllables_English(t *testing.T) {
	ps := englishSet(t)
	cases := []struct {
		word string
		want int
	}{
		{"make", 1},
		{"table", 2},
		{"wanted", 2},
		{"walked", 1},
		{"media", 3},
		{"boxes", 2},
		{"makes", 1},
		{"strength", 1},
		{"rhythm", 1},
		{"ratio", 3},
		{"a", 1},
		{"", 0},
	}
	for _, c := range cases {
		if got := Syllables(c.word, ps); got != c.want {
			t.Fatalf("Syllables(%q) = %d, want %d", c.word, got, c.want)
		}
	}
}

func TestSyllableTotal(t *testing.T) {
	ps := englishSet(t)
	if got := SyllableTotal([]string{"make", "table"}, ps); got != 3 {
		t.Fatalf("got %d", got)
	}
}
