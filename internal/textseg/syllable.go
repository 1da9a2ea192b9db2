package textseg

import (
	"strings"
	"unicode"

	"github.com/hyperifyio/contentlint/internal/lang"
)

// Syllables estimates the syllable count of one word using the language's
// vowel-group heuristic: count transitions into vowel groups, then apply
// the language's ending and hiatus corrections. Words with no vowels count
// as one syllable.
func Syllables(word string, ps *lang.PatternSet) int {
	w := strings.ToLower(word)
	w = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, w)
	if w == "" {
		return 0
	}

	isVowel := func(r rune) bool {
		return strings.ContainsRune(ps.Vowels, r)
	}

	runes := []rune(w)
	groups := 0
	prevVowel := false
	for _, r := range runes {
		v := isVowel(r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}

	if ps.SilentFinalE && groups > 1 {
		switch {
		case strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && !strings.HasSuffix(w, "ee"):
			// silent trailing e: "make", "node"
			groups--
		case strings.HasSuffix(w, "ed") && len(runes) > 3:
			// "-ed" is silent unless after t/d: "walked" vs "wanted"
			if c := runes[len(runes)-3]; c != 't' && c != 'd' {
				groups--
			}
		case strings.HasSuffix(w, "es") && len(runes) > 3:
			// "-es" is silent unless after a sibilant: "makes" vs "boxes"
			switch runes[len(runes)-3] {
			case 's', 'x', 'z', 'c', 'g', 'h':
			default:
				groups--
			}
		}
	}

	// Hiatus sequences the group count collapses ("me-di-a", "ge-o").
	for seq, delta := range ps.SyllableAdjust {
		if n := strings.Count(w, seq); n > 0 {
			groups += n * delta
		}
	}

	if groups < 1 {
		groups = 1
	}
	return groups
}

// SyllableTotal sums syllables over a word slice.
func SyllableTotal(words []string, ps *lang.PatternSet) int {
	total := 0
	for _, w := range words {
		total += Syllables(w, ps)
	}
	return total
}
