package triple

import (
	"strings"
)

// Category classifies how distinctive an attribute is for the central
// entity, from globally unique facts down to commodity facts shared by
// every competitor.
type Category string

const (
	CategoryUnique Category = "UNIQUE"
	CategoryRoot   Category = "ROOT"
	CategoryRare   Category = "RARE"
	CategoryCommon Category = "COMMON"
)

// Subject identifies the entity a fact is about.
type Subject struct {
	Label string `json:"label" yaml:"label"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Predicate names the attribute/relation of a fact.
type Predicate struct {
	Relation string   `json:"relation" yaml:"relation"`
	Category Category `json:"category,omitempty" yaml:"category,omitempty"`
}

// Object carries the attribute value as declared text.
type Object struct {
	Value string `json:"value" yaml:"value"`
}

// Triple is one Entity-Attribute-Value fact about the document's subject
// matter. Synonyms list lexical variants of the subject label that count as
// a mention of the entity in running text.
type Triple struct {
	Subject   Subject   `json:"subject" yaml:"subject"`
	Predicate Predicate `json:"predicate" yaml:"predicate"`
	Object    Object    `json:"object" yaml:"object"`
	Synonyms  []string  `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
}

// Usable reports whether the triple carries enough identity to participate
// in placement, density, and consistency checks. Triples that fail this are
// skipped silently wherever they appear.
func (t Triple) Usable() bool {
	return strings.TrimSpace(t.Subject.Label) != "" && strings.TrimSpace(t.Predicate.Relation) != ""
}

// Key returns the normalized entity+attribute identity used to pair facts
// across documents.
func (t Triple) Key() string {
	return Normalize(t.Subject.Label) + "|" + Normalize(t.Predicate.Relation)
}

// Mentions returns every surface form that counts as a mention of the
// triple's entity: the label plus any declared synonyms, normalized.
func (t Triple) Mentions() []string {
	out := make([]string, 0, 1+len(t.Synonyms))
	if m := Normalize(t.Subject.Label); m != "" {
		out = append(out, m)
	}
	for _, s := range t.Synonyms {
		if m := Normalize(s); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// Sibling is a triple declared by another document in the same collection,
// carrying the identity of that document for contradiction messages.
type Sibling struct {
	Triple
	SourceDocumentID string `json:"sourceDocumentId" yaml:"sourceDocumentId"`
}

// Normalize canonicalizes entity and attribute strings for comparison:
// lowercase, trimmed, inner whitespace collapsed to single spaces.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
