// Package config layers the engine's tunables: defaults, then an optional
// YAML file, then environment variables, then flags (applied by the CLI).
package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/rules"
)

// Config is the resolved runtime configuration.
type Config struct {
	LLM struct {
		BaseURL string
		Model   string
		APIKey  string
	}
	Corpus struct {
		URL    string
		APIKey string
	}
	CacheDir string
	// NetworkTimeout bounds each outbound call independently.
	NetworkTimeout time.Duration
	// Workers sizes the pool for network-bound checks.
	Workers int
	// Tolerance is the relative numeric tolerance of the consistency check.
	Tolerance  float64
	Thresholds rules.Thresholds
}

// Default returns the shipped configuration.
func Default() Config {
	var c Config
	c.NetworkTimeout = 30 * time.Second
	c.Workers = 2
	c.Tolerance = 0.05
	c.Thresholds = rules.DefaultThresholds()
	return c
}

// FileConfig is the single-file YAML schema. Zero values mean "not set".
type FileConfig struct {
	LLM struct {
		Base  string `yaml:"base"`
		Model string `yaml:"model"`
		Key   string `yaml:"key"`
	} `yaml:"llm"`
	Corpus struct {
		URL string `yaml:"url"`
		Key string `yaml:"key"`
	} `yaml:"corpus"`
	Cache struct {
		Dir string `yaml:"dir"`
	} `yaml:"cache"`
	Timeout   time.Duration `yaml:"timeout"`
	Workers   int           `yaml:"workers"`
	Tolerance float64       `yaml:"tolerance"`

	Thresholds struct {
		ActiveVoiceTarget      float64                     `yaml:"activeVoiceTarget"`
		MinQualifyingSentences int                         `yaml:"minQualifyingSentences"`
		MinSentenceWords       int                         `yaml:"minSentenceWords"`
		ChainingTarget         float64                     `yaml:"chainingTarget"`
		MaxStopWordRatio       float64                     `yaml:"maxStopWordRatio"`
		MinStopWordSample      int                         `yaml:"minStopWordSample"`
		MinFactDensity         float64                     `yaml:"minFactDensity"`
		MinFactSample          int                         `yaml:"minFactSample"`
		MinReadabilityWords    int                         `yaml:"minReadabilityWords"`
		AnchorMinScore         float64                     `yaml:"anchorMinScore"`
		MinEAVDensity          float64                     `yaml:"minEavDensity"`
		MinEAVSpread           float64                     `yaml:"minEavSpread"`
		GradeRanges            map[string]rules.GradeRange `yaml:"gradeRanges"`
	} `yaml:"thresholds"`
}

// LoadFile parses a YAML config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// Merge overlays a file config onto the base; only set values override.
func Merge(base Config, fc FileConfig) Config {
	c := base
	setStr(&c.LLM.BaseURL, fc.LLM.Base)
	setStr(&c.LLM.Model, fc.LLM.Model)
	setStr(&c.LLM.APIKey, fc.LLM.Key)
	setStr(&c.Corpus.URL, fc.Corpus.URL)
	setStr(&c.Corpus.APIKey, fc.Corpus.Key)
	setStr(&c.CacheDir, fc.Cache.Dir)
	if fc.Timeout > 0 {
		c.NetworkTimeout = fc.Timeout
	}
	if fc.Workers > 0 {
		c.Workers = fc.Workers
	}
	if fc.Tolerance > 0 {
		c.Tolerance = fc.Tolerance
	}

	t := &c.Thresholds
	ft := fc.Thresholds
	setF64(&t.ActiveVoiceTarget, ft.ActiveVoiceTarget)
	setInt(&t.MinQualifyingSentences, ft.MinQualifyingSentences)
	setInt(&t.MinSentenceWords, ft.MinSentenceWords)
	setF64(&t.ChainingTarget, ft.ChainingTarget)
	setF64(&t.MaxStopWordRatio, ft.MaxStopWordRatio)
	setInt(&t.MinStopWordSample, ft.MinStopWordSample)
	setF64(&t.MinFactDensity, ft.MinFactDensity)
	setInt(&t.MinFactSample, ft.MinFactSample)
	setInt(&t.MinReadabilityWords, ft.MinReadabilityWords)
	setF64(&t.AnchorMinScore, ft.AnchorMinScore)
	setF64(&t.MinEAVDensity, ft.MinEAVDensity)
	setF64(&t.MinEAVSpread, ft.MinEAVSpread)
	// The map header is shared with base; clone before overlaying so Merge
	// never mutates the caller's config.
	ranges := make(map[report.Audience]rules.GradeRange, len(t.GradeRanges)+len(ft.GradeRanges))
	for aud, r := range t.GradeRanges {
		ranges[aud] = r
	}
	for aud, r := range ft.GradeRanges {
		ranges[report.ParseAudience(aud)] = r
	}
	t.GradeRanges = ranges
	return c
}

// ApplyEnv overlays environment variables, mirroring the flag namespace.
func ApplyEnv(c *Config) {
	setStr(&c.LLM.BaseURL, os.Getenv("LLM_BASE_URL"))
	setStr(&c.LLM.Model, os.Getenv("LLM_MODEL"))
	setStr(&c.LLM.APIKey, os.Getenv("LLM_API_KEY"))
	setStr(&c.Corpus.URL, os.Getenv("CORPUS_URL"))
	setStr(&c.Corpus.APIKey, os.Getenv("CORPUS_API_KEY"))
	setStr(&c.CacheDir, os.Getenv("CONTENTLINT_CACHE_DIR"))
	if d, err := time.ParseDuration(os.Getenv("CONTENTLINT_TIMEOUT")); err == nil && d > 0 {
		c.NetworkTimeout = d
	}
}

func setStr(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setF64(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
