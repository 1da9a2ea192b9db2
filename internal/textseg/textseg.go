// Package textseg provides the sentence, word, paragraph, and section
// segmentation shared by every linguistic check. Splitting is deterministic
// and byte-offset preserving so violations can point at their source.
package textseg

import (
	"strings"
	"unicode"

	"github.com/hyperifyio/contentlint/internal/lang"
)

// Sentence is a trimmed sentence with the byte offset of its first
// character in the original text.
type Sentence struct {
	Text  string
	Start int
}

// Sentences splits text into sentences. A period only ends a sentence when
// followed by whitespace and not preceded by a known abbreviation from the
// language's pattern set, so "Dr. Smith" and "e.g. this" stay intact.
// Newlines always terminate a sentence.
func Sentences(text string, ps *lang.PatternSet) []Sentence {
	var out []Sentence
	n := len(text)
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		if seg := strings.TrimSpace(text[start:end]); seg != "" {
			out = append(out, Sentence{Text: seg, Start: start})
		}
		start = -1
	}
	for i := 0; i < n; i++ {
		c := text[i]
		if start < 0 && c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			start = i
		}
		switch c {
		case '\n':
			flush(i)
		case '!', '?':
			if i+1 >= n || isSpaceByte(text[i+1]) {
				flush(i + 1)
			}
		case '.':
			if i+1 < n && !isSpaceByte(text[i+1]) {
				continue // decimal point or dotted abbreviation interior
			}
			if start >= 0 && isAbbreviation(text[start:i], ps) {
				continue
			}
			flush(i + 1)
		}
	}
	flush(n)
	return out
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isAbbreviation checks whether the token immediately before a period is a
// sentence-internal abbreviation (or a single initial like "J.").
func isAbbreviation(prefix string, ps *lang.PatternSet) bool {
	j := strings.LastIndexFunc(prefix, unicode.IsSpace)
	tok := strings.ToLower(strings.Trim(prefix[j+1:], "\"'()[]«»“”‘’"))
	tok = strings.TrimSuffix(tok, ".")
	if tok == "" {
		return false
	}
	if _, ok := ps.Abbreviations[tok]; ok {
		return true
	}
	// Single letters are initials: "J. Doe".
	return len([]rune(tok)) == 1 && unicode.IsLetter([]rune(tok)[0])
}

// Words splits text into word tokens, keeping letters, digits, and
// word-internal apostrophes/hyphens. Accented letters count as letters.
func Words(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’' && r != '-'
	})
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.Trim(w, "'’-")
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// WordCount counts word tokens as Words does.
func WordCount(text string) int {
	return len(Words(text))
}

// Paragraph is a block of text separated by blank lines.
type Paragraph struct {
	Text  string
	Start int
}

// Paragraphs splits text on blank lines, preserving byte offsets.
func Paragraphs(text string) []Paragraph {
	var out []Paragraph
	start := -1
	lineStart := 0
	blank := true
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			line := strings.TrimSpace(text[lineStart:min(i, len(text))])
			if line == "" {
				if start >= 0 && !blank {
					out = append(out, Paragraph{Text: strings.TrimSpace(text[start:lineStart]), Start: start})
					start = -1
					blank = true
				}
			} else if start < 0 {
				start = lineStart
				blank = false
			}
			lineStart = i + 1
		}
	}
	if start >= 0 {
		out = append(out, Paragraph{Text: strings.TrimSpace(text[start:]), Start: start})
	}
	return out
}

// Section is a markdown document slice delimited by level-2/3 headings.
// Content before the first heading forms a level-0 section with an empty
// heading.
type Section struct {
	Heading string
	Level   int
	Start   int
	Body    string
}

// Sections splits a markdown document on "## " and "### " headings.
func Sections(markdown string) []Section {
	type head struct {
		text  string
		level int
		start int // heading line start
		body  int // first byte after the heading line
	}
	var heads []head
	lineStart := 0
	for i := 0; i <= len(markdown); i++ {
		if i == len(markdown) || markdown[i] == '\n' {
			line := markdown[lineStart:min(i, len(markdown))]
			if lvl, text, ok := splitHeading(line); ok && (lvl == 2 || lvl == 3) {
				heads = append(heads, head{text: text, level: lvl, start: lineStart, body: min(i+1, len(markdown))})
			}
			lineStart = i + 1
		}
	}
	var out []Section
	if len(heads) == 0 || heads[0].start > 0 {
		end := len(markdown)
		if len(heads) > 0 {
			end = heads[0].start
		}
		if body := strings.TrimSpace(markdown[:end]); body != "" {
			out = append(out, Section{Body: body})
		}
	}
	for i, h := range heads {
		end := len(markdown)
		if i+1 < len(heads) {
			end = heads[i+1].start
		}
		out = append(out, Section{
			Heading: h.text,
			Level:   h.level,
			Start:   h.start,
			Body:    strings.TrimSpace(markdown[h.body:end]),
		})
	}
	return out
}

func splitHeading(line string) (level int, text string, ok bool) {
	s := strings.TrimSpace(line)
	i := 0
	for i < len(s) && s[i] == '#' {
		i++
	}
	if i == 0 || i > 6 || i >= len(s) || s[i] != ' ' {
		return 0, "", false
	}
	return i, strings.TrimSpace(s[i:]), true
}

// NGrams returns all lowercase n-grams of the given word slice joined by
// single spaces.
func NGrams(words []string, n int) []string {
	if n <= 0 || len(words) < n {
		return nil
	}
	out := make([]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		out = append(out, strings.ToLower(strings.Join(words[i:i+n], " ")))
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
