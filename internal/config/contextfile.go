package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/triple"
)

// ContextFile is the YAML schema the CLI accepts for a validation context.
type ContextFile struct {
	Language   string             `yaml:"language"`
	Audience   string             `yaml:"audience"`
	Stage      string             `yaml:"stage"`
	Section    report.SectionMeta `yaml:"section"`
	Pillar     report.Pillar      `yaml:"pillar"`
	Collection string             `yaml:"collection"`
	DocumentID string             `yaml:"documentId"`
	Triples    []triple.Raw       `yaml:"triples"`
	Links      []struct {
		Anchor        string       `yaml:"anchor"`
		TargetTopic   string       `yaml:"targetTopic"`
		Position      int          `yaml:"position"`
		TargetTriples []triple.Raw `yaml:"targetTriples"`
	} `yaml:"links"`
}

// LoadContext reads and resolves a context file into the canonical form:
// triples are ingested (legacy category fallback resolved, unusable facts
// dropped) exactly once here.
func LoadContext(path string) (*report.Context, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf ContextFile
	if err := yaml.Unmarshal(b, &cf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	vc := &report.Context{
		Language:   cf.Language,
		Audience:   report.ParseAudience(cf.Audience),
		Stage:      report.Stage(cf.Stage),
		Section:    cf.Section,
		Pillar:     cf.Pillar,
		Collection: cf.Collection,
		DocumentID: cf.DocumentID,
		Triples:    triple.Ingest(cf.Triples),
	}
	for _, l := range cf.Links {
		vc.Links = append(vc.Links, report.Link{
			Anchor:        l.Anchor,
			TargetTopic:   l.TargetTopic,
			Position:      l.Position,
			TargetTriples: triple.Ingest(l.TargetTriples),
		})
	}
	if err := vc.Validate(); err != nil {
		return nil, err
	}
	return vc, nil
}
