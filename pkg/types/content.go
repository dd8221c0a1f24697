// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ContentPlanItem is one row of a generated content calendar.
type ContentPlanItem struct {
	// Date is the period label for the item (e.g. "Week 1, Monday").
	Date string `json:"date" yaml:"date" validate:"required"`

	// Channel is the distribution channel (e.g. "telegram", "blog").
	Channel string `json:"channel" yaml:"channel" validate:"required"`

	// Format is the content format (e.g. "post", "story", "article").
	Format string `json:"format" yaml:"format" validate:"required"`

	// Topic is the working title for the item.
	Topic string `json:"topic" yaml:"topic" validate:"required"`

	// Description is a short brief explaining what the item covers.
	Description string `json:"description" yaml:"description"`
}

// ContentPlan wraps an ordered list of plan items. Order is preserved
// exactly as returned by the model.
type ContentPlan struct {
	Items []ContentPlanItem `json:"items" yaml:"items" validate:"required,dive"`
}

// Topics returns the topic of every item, in plan order.
func (p ContentPlan) Topics() []string {
	topics := make([]string, len(p.Items))
	for i, item := range p.Items {
		topics[i] = item.Topic
	}
	return topics
}

// GenerationKind identifies a content kind produced by the assistant.
type GenerationKind string

const (
	KindPlan       GenerationKind = "plan"
	KindBroadcast  GenerationKind = "broadcast"
	KindLeadMagnet GenerationKind = "lead_magnet"
	KindArticle    GenerationKind = "article"
)

// ValidKinds lists every accepted GenerationKind value.
var ValidKinds = map[GenerationKind]bool{
	KindPlan:       true,
	KindBroadcast:  true,
	KindLeadMagnet: true,
	KindArticle:    true,
}

// Generation is a stored generation result.
type Generation struct {
	// ID is the store-assigned row identifier.
	ID int64 `json:"id" yaml:"id"`

	// Kind categorizes the generation: plan, broadcast, lead_magnet, article.
	Kind GenerationKind `json:"kind" yaml:"kind"`

	// Niche is the business niche the content was generated for.
	Niche string `json:"niche,omitempty" yaml:"niche,omitempty"`

	// Topic is the subject of the generation.
	Topic string `json:"topic,omitempty" yaml:"topic,omitempty"`

	// Content is the generated text (Markdown for streamed kinds, JSON for
	// plans).
	Content string `json:"content" yaml:"content"`

	// CreatedAt records when the generation was stored.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
