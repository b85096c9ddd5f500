// Package curation talks to the LLM curation server: an OpenAI-compatible
// endpoint that also exposes an MCP query route able to search tourism data
// and design a full course on its own.
package curation

import (
	"context"

	"mannam/entities"
)

// Result is the curation provider's wire response. Success=false carries the
// provider-reported Error; transport problems come back as Go errors instead.
type Result struct {
	Success       bool             `json:"success"`
	Spots         []entities.Spot  `json:"spots"`
	Course        *entities.Course `json:"course,omitempty"`
	Message       string           `json:"message,omitempty"`
	SelectedTools []string         `json:"selected_tools,omitempty"`
	Error         string           `json:"error,omitempty"`
}

type Client interface {
	// Curate runs the MCP query pipeline. Slow by design; the implementation
	// bounds the wait with its configured timeout on top of ctx.
	Curate(ctx context.Context, query, areaCode, sigunguCode string) (*Result, error)

	// Generate is a plain chat completion, used for hashtag generation.
	Generate(ctx context.Context, systemPrompt, prompt string) (string, error)
}
