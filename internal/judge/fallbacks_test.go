package judge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/contentlint/internal/report"
)

func TestFallbackFirstPerson_ShortContentSkipped(t *testing.T) {
	out := fallbackFirstPerson("Barely any words here.", sectionContext())
	assert.Empty(t, out)
}

func TestFallbackFirstPerson_MarkerSatisfies(t *testing.T) {
	content := "We " + strings.TrimSpace(strings.Repeat("describe the platform design here ", 6))
	out := fallbackFirstPerson(content, sectionContext())
	assert.Empty(t, out)
}

func TestFallbackDefinitionOpening_GoodOpeningPasses(t *testing.T) {
	// 45-word definitional first sentence.
	first := "A content validation engine is a system that " + strings.TrimSpace(strings.Repeat("very ", 36)) + "."
	out := fallbackDefinitionOpening(first+" More text follows.", sectionContext())
	assert.Empty(t, out)
}

func TestFallbackDefinitionOpening_ShortOpeningFlagged(t *testing.T) {
	out := fallbackDefinitionOpening("Widgets rock. They really do.", sectionContext())
	require.Len(t, out, 1)
	assert.Equal(t, "DEFINITION_OPENING", out[0].RuleID)
}

func TestFallbackMarketingFluff_LocalizedMarkers(t *testing.T) {
	vc := &report.Context{Language: "de", Stage: report.StageSection}
	out := fallbackMarketingFluff("Eine revolutionäre Plattform für alle.", vc)
	require.Len(t, out, 1)
	assert.Equal(t, "MARKETING_FLUFF", out[0].RuleID)

	assert.Empty(t, fallbackMarketingFluff("Eine solide Plattform für alle.", vc))
}
