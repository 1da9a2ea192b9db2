package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/contentlint/internal/config"
	"github.com/hyperifyio/contentlint/internal/consistency"
	"github.com/hyperifyio/contentlint/internal/engine"
	"github.com/hyperifyio/contentlint/internal/extract"
	"github.com/hyperifyio/contentlint/internal/judge"
	"github.com/hyperifyio/contentlint/internal/llm"
	"github.com/hyperifyio/contentlint/internal/report"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		contextPath string
		configPath  string
		outputPath  string
		llmBaseURL  string
		llmModel    string
		llmKey      string
		corpusURL   string
		corpusKey   string
		cacheDir    string
		timeout     time.Duration
		deadline    time.Duration
		failOn      string
		verbose     bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to content file (.md or .html)")
	flag.StringVar(&contextPath, "context", "", "Path to validation context YAML")
	flag.StringVar(&configPath, "config", "", "Path to config YAML")
	flag.StringVar(&outputPath, "output", "", "Path to write the JSON report (default stdout)")
	flag.StringVar(&llmBaseURL, "llm.base", "", "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", "", "Model name for the judgment capability")
	flag.StringVar(&llmKey, "llm.key", "", "API key for the judgment capability")
	flag.StringVar(&corpusURL, "corpus.url", "", "Document-store base URL for cross-document checks")
	flag.StringVar(&corpusKey, "corpus.key", "", "API key for the document store")
	flag.StringVar(&cacheDir, "cache.dir", "", "Verdict cache directory")
	flag.DurationVar(&timeout, "timeout", 0, "Per-check timeout for network-bound checks")
	flag.DurationVar(&deadline, "deadline", 0, "Overall deadline for the pass; partial report after (0 disables)")
	flag.StringVar(&failOn, "fail-on", "", "Exit non-zero when violations of this severity exist (error|warning|info)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if inputPath == "" || contextPath == "" {
		log.Fatal().Msg("both -input and -context are required")
	}

	cfg := config.Default()
	if configPath != "" {
		fc, err := config.LoadFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
		cfg = config.Merge(cfg, fc)
	}
	config.ApplyEnv(&cfg)
	override(&cfg.LLM.BaseURL, llmBaseURL)
	override(&cfg.LLM.Model, llmModel)
	override(&cfg.LLM.APIKey, llmKey)
	override(&cfg.Corpus.URL, corpusURL)
	override(&cfg.Corpus.APIKey, corpusKey)
	override(&cfg.CacheDir, cacheDir)
	if timeout > 0 {
		cfg.NetworkTimeout = timeout
	}

	content, anchors, err := readContent(inputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("read content")
	}
	vc, err := config.LoadContext(contextPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load context")
	}
	fillAnchorPositions(vc, anchors)
	if cfg.Corpus.URL != "" {
		vc.Corpus = &consistency.HTTPSource{BaseURL: cfg.Corpus.URL, APIKey: cfg.Corpus.APIKey}
	}

	ev := &judge.Evaluator{
		Client:  nil,
		Model:   cfg.LLM.Model,
		Timeout: cfg.NetworkTimeout,
		Log:     log.Logger,
	}
	if p := llm.New(cfg.LLM.BaseURL, cfg.LLM.APIKey); p != nil {
		ev.Client = p
	}
	if cfg.CacheDir != "" {
		ev.Cache = &judge.Cache{Dir: cfg.CacheDir}
	}

	eng := engine.New(engine.Options{
		Thresholds:     cfg.Thresholds,
		Judge:          ev,
		Consistency:    &consistency.Validator{Tolerance: cfg.Tolerance, Log: log.Logger},
		NetworkWorkers: cfg.Workers,
		NetworkTimeout: cfg.NetworkTimeout,
		Log:            log.Logger,
	})

	ctx := context.Background()
	if deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}

	rep, err := eng.Validate(ctx, content, vc)
	if err != nil {
		log.Fatal().Err(err).Msg("validation failed")
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode report")
	}
	if outputPath == "" {
		fmt.Println(string(out))
	} else if err := os.WriteFile(outputPath, append(out, '\n'), 0o644); err != nil {
		log.Fatal().Err(err).Msg("write report")
	}

	if blocked(rep, failOn) {
		os.Exit(2)
	}
}

func override(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = v
	}
}

func readContent(path string) (string, []extract.Anchor, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		doc := extract.FromHTML(b)
		return doc.Text, doc.Anchors, nil
	}
	return string(b), nil, nil
}

// fillAnchorPositions resolves context links without an explicit position
// against the anchors found during HTML extraction, so relevance findings
// still point into the converted text.
func fillAnchorPositions(vc *report.Context, anchors []extract.Anchor) {
	for i := range vc.Links {
		if vc.Links[i].Position != 0 {
			continue
		}
		want := strings.TrimSpace(vc.Links[i].Anchor)
		for _, a := range anchors {
			if strings.EqualFold(strings.TrimSpace(a.Text), want) {
				vc.Links[i].Position = a.Position
				break
			}
		}
	}
}

// blocked applies the caller's publication policy: the report itself never
// decides pass/fail.
func blocked(rep report.Report, failOn string) bool {
	switch report.Severity(strings.ToLower(failOn)) {
	case report.SeverityError:
		return rep.Errors > 0
	case report.SeverityWarning:
		return rep.Errors+rep.Warnings > 0
	case report.SeverityInfo:
		return len(rep.Violations) > 0
	}
	return false
}
