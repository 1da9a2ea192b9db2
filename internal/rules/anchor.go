package rules

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/contentlint/internal/lang"
	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/textseg"
	"github.com/hyperifyio/contentlint/internal/triple"
)

// AnchorRelevance scores each internal link's anchor text against its
// resolved target topic on a fixed ladder and flags weak anchors. Scores:
// 1.0 containment/exact, 0.8 majority keyword overlap, 0.6 matching target
// fact, 0.5 partial overlap, 0.1 none.
type AnchorRelevance struct {
	T Thresholds
}

// Check implements the validator contract.
func (a AnchorRelevance) Check(_ string, vc *report.Context) []report.Violation {
	if len(vc.Links) == 0 {
		return nil
	}
	ps, _ := lang.ForLanguage(vc.Language)
	var out []report.Violation
	for _, l := range vc.Links {
		score := AnchorScore(l, ps)
		if score >= a.T.AnchorMinScore {
			continue
		}
		out = append(out, report.Violation{
			RuleID:   RuleAnchorRelevance,
			Severity: report.SeverityWarning,
			Text: fmt.Sprintf("anchor %q scores %.1f relevance against target topic %q",
				l.Anchor, score, l.TargetTopic),
			Position:   l.Position,
			Suggestion: "use anchor text that names the target topic or one of its key facts",
			Category:   "linking",
		})
	}
	return out
}

// AnchorScore computes the relevance ladder for one link.
func AnchorScore(l report.Link, ps *lang.PatternSet) float64 {
	anchor := triple.Normalize(l.Anchor)
	topic := triple.Normalize(l.TargetTopic)
	if anchor == "" || topic == "" {
		return 0.1
	}
	if anchor == topic || strings.Contains(anchor, topic) || strings.Contains(topic, anchor) {
		return 1.0
	}

	anchorWords := keywordSet(anchor, ps)
	topicWords := keywordSet(topic, ps)
	overlap := 0
	for w := range topicWords {
		if _, ok := anchorWords[w]; ok {
			overlap++
		}
	}
	if len(topicWords) > 0 && float64(overlap) >= 0.5*float64(len(topicWords)) {
		return 0.8
	}

	for _, t := range l.TargetTriples {
		if !t.Usable() {
			continue
		}
		for _, m := range t.Mentions() {
			if strings.Contains(anchor, m) {
				return 0.6
			}
		}
		if v := triple.Normalize(t.Object.Value); v != "" && strings.Contains(anchor, v) {
			return 0.6
		}
	}

	if overlap > 0 {
		return 0.5
	}
	return 0.1
}

func keywordSet(s string, ps *lang.PatternSet) map[string]struct{} {
	out := map[string]struct{}{}
	for _, w := range textseg.Words(s) {
		lw := strings.ToLower(w)
		if ps.IsStopWord(lw) {
			continue
		}
		out[lw] = struct{}{}
	}
	return out
}
