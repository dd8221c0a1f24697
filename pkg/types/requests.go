// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PlanRequest holds the parameters for content plan generation.
type PlanRequest struct {
	// Niche is the business niche (e.g. "fitness studio").
	Niche string

	// Period is the calendar span the plan covers (e.g. "2 weeks").
	Period string

	// Channels lists the distribution channels, comma-separated.
	Channels string

	// ExtraContext carries free-form notes about the audience or brand.
	ExtraContext string
}

// BroadcastRequest holds the parameters for a social/mailing post.
type BroadcastRequest struct {
	// Channel is the target channel (e.g. "email", "telegram").
	Channel string

	// Niche is the business niche.
	Niche string

	// Topic is the subject of the post.
	Topic string

	// Tone is the desired tone of voice.
	Tone string

	// BrandKeywords lists phrases the text should work in.
	BrandKeywords string
}

// LeadMagnetRequest holds the parameters for a long-form lead magnet.
type LeadMagnetRequest struct {
	// Type is the lead magnet format (e.g. "guide", "checklist").
	Type string

	// Topic is the subject of the document.
	Topic string

	// Audience describes the intended readers.
	Audience string

	// Length is the requested size (e.g. "5 pages").
	Length string

	// Niche is the business niche.
	Niche string
}

// ArticleRequest holds the parameters for an SEO article.
type ArticleRequest struct {
	// Niche is the business niche.
	Niche string

	// Topic is the article subject.
	Topic string

	// TargetKeywords is the SEO keyword set to weave into the text.
	TargetKeywords string

	// Length is the requested size (e.g. "2500 words").
	Length string
}
