// Package engine runs every applicable check for a validation pass and
// assembles one stable report. Checks are isolated: a panicking or failing
// check degrades the report, it never aborts the pass.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hyperifyio/contentlint/internal/consistency"
	"github.com/hyperifyio/contentlint/internal/judge"
	"github.com/hyperifyio/contentlint/internal/lang"
	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/rules"
)

// Check is one registered validator. Network checks run on the bounded
// worker pool; WholeDoc checks only run on full-document passes and the
// first section, so recurring findings are not re-reported every section.
type Check struct {
	Name     string
	Network  bool
	WholeDoc bool
	Run      report.CheckFunc
}

// Options wires an engine. Judge and Consistency may be nil; the default
// check table then runs with fallback-only judging and no corpus check.
type Options struct {
	Thresholds     rules.Thresholds
	Judge          *judge.Evaluator
	Consistency    *consistency.Validator
	NetworkWorkers int
	NetworkTimeout time.Duration
	Log            zerolog.Logger
}

// Engine holds an immutable check table; safe for concurrent passes.
type Engine struct {
	checks         []Check
	networkWorkers int
	networkTimeout time.Duration
	log            zerolog.Logger
}

// New assembles the default check table from the options.
func New(opts Options) *Engine {
	t := opts.Thresholds
	checks := []Check{
		{Name: "readability", Run: pure(rules.Readability{T: t}.Check)},
		{Name: "passive-voice", Run: pure(rules.PassiveVoice{T: t}.Check)},
		{Name: "discourse-chaining", Run: pure(rules.DiscourseChaining{T: t}.Check)},
		{Name: "information-density", Run: pure(rules.InformationDensity{T: t}.Check)},
		{Name: "anchor-relevance", Run: pure(rules.AnchorRelevance{T: t}.Check)},
		{Name: "eav-coverage", Run: pure(rules.EAVCoverage{T: t}.Check)},
		{Name: "section-repetition", WholeDoc: true, Run: pure(rules.SectionRepetition{T: t}.Check)},
	}
	if opts.Consistency != nil {
		checks = append(checks, Check{Name: "consistency", Network: true, WholeDoc: true, Run: opts.Consistency.Check})
	}
	ev := opts.Judge
	if ev == nil {
		ev = &judge.Evaluator{Log: opts.Log}
	}
	checks = append(checks, Check{Name: "judge", Network: true, Run: ev.Check})

	workers := opts.NetworkWorkers
	if workers <= 0 {
		workers = countNetwork(checks)
	}
	return &Engine{
		checks:         checks,
		networkWorkers: workers,
		networkTimeout: opts.NetworkTimeout,
		log:            opts.Log,
	}
}

// NewWithChecks builds an engine from an explicit check table; used by
// tests and callers with custom validators.
func NewWithChecks(checks []Check, workers int, log zerolog.Logger) *Engine {
	if workers <= 0 {
		workers = countNetwork(checks)
		if workers == 0 {
			workers = 1
		}
	}
	return &Engine{checks: checks, networkWorkers: workers, log: log}
}

func countNetwork(checks []Check) int {
	n := 0
	for _, c := range checks {
		if c.Network {
			n++
		}
	}
	if n == 0 {
		n = 1
	}
	return n
}

func pure(f func(string, *report.Context) []report.Violation) report.CheckFunc {
	return func(_ context.Context, content string, vc *report.Context) ([]report.Violation, error) {
		return f(content, vc), nil
	}
}

type checkResult struct {
	name       string
	violations []report.Violation
	degraded   bool
}

// Validate runs one pass. The only caller-visible error is an invalid
// context; everything else degrades. With a context deadline, checks still
// outstanding when it expires are dropped and the partial report returns
// with Degraded set.
func (e *Engine) Validate(ctx context.Context, content string, vc *report.Context) (report.Report, error) {
	if err := vc.Validate(); err != nil {
		return report.Report{}, err
	}
	log := e.log.With().Str("pass", uuid.NewString()).Logger()
	if _, ok := lang.ForLanguage(vc.Language); !ok && vc.Language != "" {
		log.Info().Str("language", vc.Language).
			Msg("no dedicated pattern set, using English fallback")
	}
	wholeDoc := vc.WholeDocumentPass()

	var applicable []Check
	for _, c := range e.checks {
		if c.WholeDoc && !wholeDoc {
			continue
		}
		applicable = append(applicable, c)
	}

	var violations []report.Violation
	degraded := false

	// Network-bound checks fan out first so the pure checks overlap their
	// latency. The channel is buffered so abandoned checks never leak their
	// goroutine after a deadline.
	networkChecks := 0
	for _, c := range applicable {
		if c.Network {
			networkChecks++
		}
	}
	results := make(chan checkResult, networkChecks)
	sem := make(chan struct{}, e.networkWorkers)
	outstanding := 0
	for _, c := range applicable {
		if !c.Network {
			continue
		}
		outstanding++
		go func(c Check) {
			sem <- struct{}{}
			defer func() { <-sem }()
			results <- e.runIsolated(ctx, c, content, vc, log)
		}(c)
	}

	for _, c := range applicable {
		if c.Network {
			continue
		}
		res := e.runIsolated(ctx, c, content, vc, log)
		violations = append(violations, res.violations...)
		degraded = degraded || res.degraded
	}

collect:
	for outstanding > 0 {
		select {
		case res := <-results:
			outstanding--
			violations = append(violations, res.violations...)
			degraded = degraded || res.degraded
		case <-ctx.Done():
			log.Warn().Int("outstanding", outstanding).
				Msg("deadline reached, returning partial report")
			degraded = true
			break collect
		}
	}

	rep := report.Build(violations, degraded)
	log.Debug().Int("violations", len(rep.Violations)).Bool("degraded", rep.Degraded).
		Msg("validation pass complete")
	return rep, nil
}

// runIsolated executes one check, converting panics and errors into a
// degraded result. A network check additionally gets its own timeout so a
// slow dependency cannot hold the pass hostage.
func (e *Engine) runIsolated(ctx context.Context, c Check, content string, vc *report.Context, log zerolog.Logger) (res checkResult) {
	res.name = c.Name
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Str("check", c.Name).
				Msg("check panicked, excluded from report")
			res.violations = nil
			res.degraded = true
		}
	}()
	runCtx := ctx
	if c.Network && e.networkTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.networkTimeout)
		defer cancel()
	}
	vs, err := c.Run(runCtx, content, vc)
	res.violations = vs
	if err != nil {
		log.Warn().Err(err).Str("check", c.Name).Msg("check reported degraded coverage")
		res.degraded = true
	}
	return res
}
