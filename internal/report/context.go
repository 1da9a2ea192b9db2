package report

import (
	"context"
	"errors"
	"strings"

	"github.com/hyperifyio/contentlint/internal/triple"
)

// Audience buckets map to grade-level expectations; the concrete ranges are
// configuration (rules.Thresholds), not properties of the bucket itself.
type Audience string

const (
	AudienceGeneral      Audience = "general"
	AudienceProfessional Audience = "professional"
	AudienceTechnical    Audience = "technical"
	AudienceAcademic     Audience = "academic"
)

// ParseAudience maps free-form audience hints onto a bucket, defaulting to
// general when the hint is unknown.
func ParseAudience(s string) Audience {
	switch Audience(strings.ToLower(strings.TrimSpace(s))) {
	case AudienceProfessional:
		return AudienceProfessional
	case AudienceTechnical:
		return AudienceTechnical
	case AudienceAcademic:
		return AudienceAcademic
	default:
		return AudienceGeneral
	}
}

// Stage says what slice of the document the content under validation
// represents. Whole-document checks only run for StageDocument and for the
// first section, to avoid re-reporting the same finding every section pass.
type Stage string

const (
	StageSection  Stage = "section"
	StageDocument Stage = "document"
)

// SectionMeta describes the section being validated within its document.
type SectionMeta struct {
	Heading string `json:"heading" yaml:"heading"`
	Level   int    `json:"level" yaml:"level"`
	Zone    string `json:"zone" yaml:"zone"` // e.g. "introduction", "body", "conclusion"
	Ordinal int    `json:"ordinal" yaml:"ordinal"`
}

// Pillar is the site-level framing the document must stay anchored to.
type Pillar struct {
	CentralEntity string `json:"centralEntity" yaml:"centralEntity"`
	SourceContext string `json:"sourceContext" yaml:"sourceContext"`
	SearchIntent  string `json:"searchIntent" yaml:"searchIntent"`
}

// Link is an internal link found in the content along with the resolved
// topic (and facts) of its target, for anchor-relevance scoring.
type Link struct {
	Anchor        string          `json:"anchor" yaml:"anchor"`
	TargetTopic   string          `json:"targetTopic" yaml:"targetTopic"`
	TargetTriples []triple.Triple `json:"targetTriples,omitempty" yaml:"targetTriples,omitempty"`
	Position      int             `json:"position" yaml:"position"`
}

// TripleSource is the corpus-access capability consumed by the
// cross-document consistency check. Implementations must return a typed
// error on connectivity failure rather than panicking, so the check can
// fail open deterministically. An empty result is a valid answer.
type TripleSource interface {
	FetchSiblingTriples(ctx context.Context, collectionID, excludeDocumentID string) ([]triple.Sibling, error)
}

// Context is the immutable per-pass input shared by every check. Checks
// read it, never write it.
type Context struct {
	Language   string
	Audience   Audience
	Stage      Stage
	Section    SectionMeta
	Pillar     Pillar
	Triples    []triple.Triple
	Links      []Link
	Collection string
	DocumentID string

	// Corpus may be nil; the consistency check then reports nothing.
	Corpus TripleSource
}

// ErrInvalidContext is the only failure a caller of the engine ever sees;
// everything past context validation degrades instead of erroring.
var ErrInvalidContext = errors.New("invalid validation context")

// Validate rejects contexts the engine cannot run with at all. Deliberately
// minimal: unusable triples are skipped by checks, unknown languages fall
// back to English, so neither invalidates the context.
func (c *Context) Validate() error {
	if c == nil {
		return ErrInvalidContext
	}
	if c.Stage != "" && c.Stage != StageSection && c.Stage != StageDocument {
		return ErrInvalidContext
	}
	return nil
}

// WholeDocumentPass reports whether document-scope checks apply to this
// pass: a full-document audit, or the introduction / first section.
func (c *Context) WholeDocumentPass() bool {
	if c.Stage == StageDocument {
		return true
	}
	if c.Section.Ordinal == 0 {
		return true
	}
	return strings.EqualFold(c.Section.Zone, "introduction")
}

// CheckFunc is the contract every check implements: pure with respect to
// its inputs, returns an empty slice for "nothing to check", and reserves
// its error return for degraded-coverage signalling, never for ordinary
// negative findings.
type CheckFunc func(ctx context.Context, content string, vc *Context) ([]Violation, error)
