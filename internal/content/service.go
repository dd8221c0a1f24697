// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/content-assistant/internal/llm"
	"github.com/pdiddy/content-assistant/internal/prompts"
	"github.com/pdiddy/content-assistant/pkg/types"
)

// Sampling temperatures per artifact. Structured output runs cold so the
// model stays close to the requested JSON shape; long-form copy runs warmer.
const (
	planTemperature       = 0.3
	broadcastTemperature  = 0.7
	leadMagnetTemperature = 0.7
	articleTemperature    = 0.8
)

// Template names under the prompts directory.
const (
	planTemplate       = "content_plan"
	broadcastTemplate  = "broadcasts"
	leadMagnetTemplate = "lead_magnets"
	articleTemplate    = "seo_articles"
)

// Generator produces model output for a prompt. *llm.Client satisfies it.
type Generator interface {
	Stream(ctx context.Context, prompt string, opts llm.Options) (llm.TextStream, error)
	GenerateSync(ctx context.Context, prompt string, opts llm.Options) (string, error)
}

// Service builds prompts from templates, runs them through a Generator, and
// post-processes the output into validated artifacts.
type Service struct {
	gen        Generator
	promptsDir string
	validate   *validator.Validate
}

// NewService builds a Service reading templates from promptsDir.
func NewService(gen Generator, promptsDir string) *Service {
	return &Service{
		gen:        gen,
		promptsDir: promptsDir,
		validate:   validator.New(),
	}
}

// GeneratePlan runs the content plan template synchronously and decodes the
// model output into a validated plan. Decoding and validation failures
// return a *FormatError carrying the raw model output.
func (s *Service) GeneratePlan(ctx context.Context, req types.PlanRequest) (*types.ContentPlan, error) {
	prompt, err := prompts.Build(s.promptsDir, planTemplate, map[string]string{
		"niche":         req.Niche,
		"period":        req.Period,
		"channels":      req.Channels,
		"extra_context": req.ExtraContext,
	})
	if err != nil {
		return nil, err
	}

	raw, err := s.gen.GenerateSync(ctx, prompt, llm.Options{Temperature: llm.Float(planTemperature)})
	if err != nil {
		return nil, err
	}

	plan, err := parsePlan(raw)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(plan); err != nil {
		return nil, &FormatError{Err: err, Raw: raw}
	}
	return plan, nil
}

// parsePlan decodes the JSON span cut out of model output. The model is
// asked for a bare array of items but sometimes returns the enclosing
// object instead; both shapes are accepted.
func parsePlan(raw string) (*types.ContentPlan, error) {
	extracted := ExtractJSONArray(raw)

	var items []types.ContentPlanItem
	if err := json.Unmarshal([]byte(extracted), &items); err == nil {
		return &types.ContentPlan{Items: items}, nil
	}

	var plan types.ContentPlan
	if err := json.Unmarshal([]byte(extracted), &plan); err != nil {
		return nil, &FormatError{Err: fmt.Errorf("decoding plan JSON: %w", err), Raw: raw}
	}
	return &plan, nil
}

// StreamBroadcast starts streaming generation of a social or mailing post.
func (s *Service) StreamBroadcast(ctx context.Context, req types.BroadcastRequest) (llm.TextStream, error) {
	prompt, err := prompts.Build(s.promptsDir, broadcastTemplate, map[string]string{
		"channel":        req.Channel,
		"business_niche": req.Niche,
		"topic":          req.Topic,
		"tone":           req.Tone,
		"brand_keywords": req.BrandKeywords,
	})
	if err != nil {
		return nil, err
	}
	return s.gen.Stream(ctx, prompt, llm.Options{Temperature: llm.Float(broadcastTemperature)})
}

// StreamLeadMagnet starts streaming generation of a long-form lead magnet.
func (s *Service) StreamLeadMagnet(ctx context.Context, req types.LeadMagnetRequest) (llm.TextStream, error) {
	prompt, err := prompts.Build(s.promptsDir, leadMagnetTemplate, map[string]string{
		"lm_type":        req.Type,
		"topic":          req.Topic,
		"audience":       req.Audience,
		"length":         req.Length,
		"business_niche": req.Niche,
	})
	if err != nil {
		return nil, err
	}
	return s.gen.Stream(ctx, prompt, llm.Options{Temperature: llm.Float(leadMagnetTemperature)})
}

// StreamArticle starts streaming generation of an SEO article.
func (s *Service) StreamArticle(ctx context.Context, req types.ArticleRequest) (llm.TextStream, error) {
	prompt, err := prompts.Build(s.promptsDir, articleTemplate, map[string]string{
		"business_niche":  req.Niche,
		"topic":           req.Topic,
		"target_keywords": req.TargetKeywords,
		"length":          req.Length,
	})
	if err != nil {
		return nil, err
	}
	return s.gen.Stream(ctx, prompt, llm.Options{Temperature: llm.Float(articleTemperature)})
}
