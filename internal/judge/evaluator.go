package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/contentlint/internal/llm"
	"github.com/hyperifyio/contentlint/internal/report"
)

// Verdict is the contract of the external judgment capability.
type Verdict struct {
	Passed  bool   `json:"passed"`
	Details string `json:"details"`
}

// ErrDegraded signals that one or more rules were skipped because the model
// failed and no fallback existed. The violations returned alongside it are
// still valid.
var ErrDegraded = errors.New("judge: one or more rules skipped")

// Evaluator runs the catalogue against content. Each rule gets exactly one
// model call per pass with its own timeout; retries belong to the caller of
// the whole engine, never here.
type Evaluator struct {
	Client    llm.Client
	Model     string
	Cache     *Cache
	Timeout   time.Duration
	Catalogue *Catalogue
	Log       zerolog.Logger
}

const systemPrompt = "You are a content-quality judge. Respond with strict JSON only: " +
	`{"passed":bool,"details":string}. details states the reason in one sentence.`

// Check implements the validator contract over the whole catalogue.
func (e *Evaluator) Check(ctx context.Context, content string, vc *report.Context) ([]report.Violation, error) {
	cat := e.Catalogue
	if cat == nil {
		cat = Default()
	}
	var out []report.Violation
	degraded := false

	for _, rule := range cat.Rules() {
		verdict, err := e.evaluate(ctx, rule, content, vc)
		if err == nil {
			if !verdict.Passed {
				text := strings.TrimSpace(verdict.Details)
				if text == "" {
					text = rule.Title
				}
				out = append(out, report.Violation{
					RuleID:     rule.ID,
					Severity:   rule.Severity,
					Text:       text,
					Suggestion: rule.Suggestion,
					Category:   rule.Category,
				})
			}
			continue
		}
		if rule.Fallback != nil {
			e.Log.Debug().Err(err).Str("rule", rule.ID).Msg("model judgment failed, using fallback")
			out = append(out, rule.Fallback(content, vc)...)
			continue
		}
		e.Log.Warn().Err(err).Str("rule", rule.ID).Msg("model judgment failed, rule skipped")
		degraded = true
	}

	if degraded {
		return out, ErrDegraded
	}
	return out, nil
}

// evaluate performs the single model call for one rule.
func (e *Evaluator) evaluate(ctx context.Context, rule RuleDefinition, content string, vc *report.Context) (Verdict, error) {
	if e.Client == nil || strings.TrimSpace(e.Model) == "" {
		return Verdict{}, errors.New("judgment capability not configured")
	}
	input := buildInput(rule, content, vc)
	if e.Cache != nil {
		if v, ok := e.Cache.Get(e.Model, rule.ID, input); ok {
			return v, nil
		}
	}

	callCtx := ctx
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}
	resp, err := e.Client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: e.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
		Temperature: 0.0,
		N:           1,
	})
	if err != nil {
		return Verdict{}, err
	}
	if len(resp.Choices) == 0 {
		return Verdict{}, errors.New("empty completion")
	}
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	var v Verdict
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &v); err != nil {
		return Verdict{}, fmt.Errorf("malformed verdict: %w", err)
	}
	if e.Cache != nil {
		_ = e.Cache.Save(e.Model, rule.ID, input, v)
	}
	return v, nil
}

func buildInput(rule RuleDefinition, content string, vc *report.Context) string {
	var sb strings.Builder
	sb.WriteString("Rule: ")
	sb.WriteString(rule.Title)
	sb.WriteString("\n")
	sb.WriteString(rule.Prompt)
	sb.WriteString("\n\nContext:\n")
	if vc.Language != "" {
		fmt.Fprintf(&sb, "- language: %s\n", vc.Language)
	}
	fmt.Fprintf(&sb, "- audience: %s\n", vc.Audience)
	if vc.Section.Heading != "" {
		fmt.Fprintf(&sb, "- section: %s\n", vc.Section.Heading)
	}
	if vc.Pillar.CentralEntity != "" {
		fmt.Fprintf(&sb, "- central entity: %s\n", vc.Pillar.CentralEntity)
	}
	if vc.Pillar.SearchIntent != "" {
		fmt.Fprintf(&sb, "- search intent: %s\n", vc.Pillar.SearchIntent)
	}
	sb.WriteString("\nContent:\n\n")
	sb.WriteString(content)
	return sb.String()
}
