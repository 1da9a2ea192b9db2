// Package rules implements the deterministic linguistic checks. Every
// validator is a small struct holding its thresholds; given identical
// content and context the output is byte-identical, and none of them
// perform I/O.
package rules

import (
	"github.com/hyperifyio/contentlint/internal/report"
)

// Rule identifiers emitted by this package. Stable strings: the upstream
// generation loop keys remediation behavior on them.
const (
	RuleReadability     = "READABILITY_GRADE"
	RuleActiveVoice     = "ACTIVE_VOICE"
	RuleDiscourse       = "DISCOURSE_CHAINING"
	RuleStopWordRatio   = "STOP_WORD_RATIO"
	RuleFactDensity     = "FACT_DENSITY"
	RuleRepetition      = "SECTION_REPETITION"
	RuleAnchorRelevance = "ANCHOR_RELEVANCE"
	RuleEAVPlacement    = "EAV_PLACEMENT"
	RuleEAVDensity      = "EAV_DENSITY"
	RuleEAVDistribution = "EAV_DISTRIBUTION"
)

// GradeRange is an inclusive target band on the 0-20 grade scale.
type GradeRange struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Thresholds collects every tunable of the heuristic checks. These are
// configuration defaults, not validated domain constants; callers may
// override any of them per deployment.
type Thresholds struct {
	// ActiveVoiceTarget is the minimum fraction of qualifying sentences
	// that must be active voice. The boundary is inclusive: exactly the
	// target passes.
	ActiveVoiceTarget float64 `yaml:"activeVoiceTarget"`
	// MinQualifyingSentences gates the passive-voice check.
	MinQualifyingSentences int `yaml:"minQualifyingSentences"`
	// MinSentenceWords: shorter sentences do not qualify for voice checks.
	MinSentenceWords int `yaml:"minSentenceWords"`

	// ChainingTarget is the minimum chained/total sentence-pair ratio.
	ChainingTarget float64 `yaml:"chainingTarget"`

	MaxStopWordRatio  float64 `yaml:"maxStopWordRatio"`
	MinStopWordSample int     `yaml:"minStopWordSample"`

	// MinFactDensity is facts per 100 words below which content reads as
	// filler. MinFactSample is the minimum word count before judging.
	MinFactDensity float64 `yaml:"minFactDensity"`
	MinFactSample  int     `yaml:"minFactSample"`

	MinReadabilityWords int `yaml:"minReadabilityWords"`

	AnchorMinScore float64 `yaml:"anchorMinScore"`

	// MinEAVDensity is entity-fact mentions per 100 words; MinEAVSpread is
	// the minimum fraction of paragraphs touching at least one fact.
	MinEAVDensity float64 `yaml:"minEavDensity"`
	MinEAVSpread  float64 `yaml:"minEavSpread"`

	GradeRanges map[report.Audience]GradeRange `yaml:"gradeRanges"`
}

// DefaultThresholds returns the shipped defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ActiveVoiceTarget:      0.70,
		MinQualifyingSentences: 3,
		MinSentenceWords:       5,
		ChainingTarget:         0.50,
		MaxStopWordRatio:       0.30,
		MinStopWordSample:      20,
		MinFactDensity:         2.0,
		MinFactSample:          100,
		MinReadabilityWords:    10,
		AnchorMinScore:         0.3,
		MinEAVDensity:          2.0,
		MinEAVSpread:           0.4,
		GradeRanges: map[report.Audience]GradeRange{
			report.AudienceGeneral:      {Min: 6, Max: 8},
			report.AudienceProfessional: {Min: 10, Max: 12},
			report.AudienceTechnical:    {Min: 12, Max: 14},
			report.AudienceAcademic:     {Min: 14, Max: 20},
		},
	}
}

// GradeRangeFor resolves the target band for an audience, defaulting to the
// general band when the audience has no configured range.
func (t Thresholds) GradeRangeFor(a report.Audience) GradeRange {
	if r, ok := t.GradeRanges[a]; ok {
		return r
	}
	if r, ok := t.GradeRanges[report.AudienceGeneral]; ok {
		return r
	}
	return GradeRange{Min: 6, Max: 8}
}

func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
