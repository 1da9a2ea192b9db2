package triple

// Raw mirrors the wire/storage schema of a triple, including the legacy
// top-level category location that predates category living on the
// predicate. The fallback is resolved exactly once here so that checks only
// ever see the canonical shape.
type Raw struct {
	Subject struct {
		Label string `json:"label" yaml:"label"`
		Type  string `json:"type" yaml:"type"`
	} `json:"subject" yaml:"subject"`
	Predicate struct {
		Relation string `json:"relation" yaml:"relation"`
		Category string `json:"category" yaml:"category"`
	} `json:"predicate" yaml:"predicate"`
	Object struct {
		Value string `json:"value" yaml:"value"`
	} `json:"object" yaml:"object"`
	// Category is the legacy location, used when the predicate carries none.
	Category string   `json:"category" yaml:"category"`
	Synonyms []string `json:"synonyms" yaml:"synonyms"`
}

// Ingest converts raw triples to canonical ones. Unusable triples (empty
// subject label or relation) are dropped, not reported; an upstream
// generator routinely emits partial facts and they must never break a
// validation pass.
func Ingest(raw []Raw) []Triple {
	out := make([]Triple, 0, len(raw))
	for _, r := range raw {
		t := Triple{
			Subject:   Subject{Label: r.Subject.Label, Type: r.Subject.Type},
			Predicate: Predicate{Relation: r.Predicate.Relation, Category: resolveCategory(r)},
			Object:    Object{Value: r.Object.Value},
			Synonyms:  r.Synonyms,
		}
		if !t.Usable() {
			continue
		}
		out = append(out, t)
	}
	return out
}

func resolveCategory(r Raw) Category {
	c := r.Predicate.Category
	if c == "" {
		c = r.Category
	}
	switch Category(c) {
	case CategoryUnique, CategoryRoot, CategoryRare, CategoryCommon:
		return Category(c)
	}
	return CategoryCommon
}
