// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package suggest turns a free-text project idea into configuration
// suggestions by asking an LLM for a JSON document. It supports a one-shot
// quick mode, a discovery-questions mode, and a full mode that takes the
// user's answers into account.
package suggest

import (
	"context"
	"errors"
	"fmt"

	"promptwizard/internal/ai"
	"promptwizard/internal/models"
)

// Mode selects which suggestion operation a request performs.
type Mode string

const (
	ModeQuick     Mode = ""
	ModeQuestions Mode = "questions"
	ModeGenerate  Mode = "generate"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeQuick, ModeQuestions, ModeGenerate:
		return true
	}
	return false
}

// Request limits per mode.
const (
	Temperature       = 0.7
	QuickMaxTokens    = 1000
	QuestionMaxTokens = 1000
	GenerateMaxTokens = 2000
)

// Completer is the slice of ai.Registry the client needs.
type Completer interface {
	Complete(ctx context.Context, req ai.Request) (string, error)
}

// Client runs suggestion requests against a Completer. No retries are made;
// each call is a single completion.
type Client struct {
	llm Completer
}

// NewClient creates a suggestion client.
func NewClient(llm Completer) *Client {
	return &Client{llm: llm}
}

// QuickGenerate returns a suggestion bundle for a bare idea.
func (c *Client) QuickGenerate(ctx context.Context, idea string) (*models.AISuggestions, error) {
	content, err := c.complete(ctx, QuickSystemPrompt, QuickUserPrompt(idea), QuickMaxTokens)
	if err != nil {
		return nil, err
	}
	return decode[models.AISuggestions](content)
}

// DiscoveryQuestions returns follow-up questions about an idea and a
// one-sentence summary of it.
func (c *Client) DiscoveryQuestions(ctx context.Context, idea string) (*models.AIQuestions, error) {
	content, err := c.complete(ctx, QuestionsSystemPrompt, QuestionsUserPrompt(idea), QuestionMaxTokens)
	if err != nil {
		return nil, err
	}
	return decode[models.AIQuestions](content)
}

// GenerateWithContext returns a richer suggestion bundle informed by the
// answers to discovery questions. answers may be empty.
func (c *Client) GenerateWithContext(ctx context.Context, idea string, answers []models.QAItem) (*models.AISuggestions, error) {
	content, err := c.complete(ctx, GenerateSystemPrompt, GenerateUserPrompt(idea, answers), GenerateMaxTokens)
	if err != nil {
		return nil, err
	}
	return decode[models.AISuggestions](content)
}

// complete performs one JSON-mode completion. A missing provider is passed
// through as ai.ErrNotConfigured; every other failure is ErrUpstream.
func (c *Client) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	content, err := c.llm.Complete(ctx, ai.Request{
		System:      system,
		User:        user,
		Temperature: Temperature,
		MaxTokens:   maxTokens,
		JSON:        true,
	})
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return content, nil
}
