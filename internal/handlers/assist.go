// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"promptwizard/internal/ai"
	"promptwizard/internal/models"
	"promptwizard/internal/suggest"
)

// Error messages of the suggestion endpoint. Clients match on them.
const (
	msgPromptRequired   = "Prompt is required"
	msgInvalidMode      = "Invalid mode"
	msgNotConfigured    = "OpenAI API key not configured"
	msgSuggestFailed    = "Failed to generate suggestions"
	msgNoResponse       = "No response from AI"
	msgProcessingFailed = "Failed to process request"
	msgInvalidBody      = "Invalid request body"
	msgRequestTooLarge  = "Request body too large"
)

// Suggester runs the three suggestion modes. *suggest.Client implements it.
type Suggester interface {
	QuickGenerate(ctx context.Context, idea string) (*models.AISuggestions, error)
	DiscoveryQuestions(ctx context.Context, idea string) (*models.AIQuestions, error)
	GenerateWithContext(ctx context.Context, idea string, answers []models.QAItem) (*models.AISuggestions, error)
}

// ProviderStatus reports whether an AI provider is configured.
// *ai.Registry implements it.
type ProviderStatus interface {
	HasActive() bool
}

// Assist groups the suggestion endpoints.
type Assist struct {
	suggester Suggester
	providers ProviderStatus
}

// NewAssist creates a new Assist handler group.
func NewAssist(suggester Suggester, providers ProviderStatus) *Assist {
	return &Assist{suggester: suggester, providers: providers}
}

// assistRequest is the body of POST /api/ai-assist. Prompt and mode are kept
// raw so a wrongly typed value is reported against its own field instead of
// failing the whole body.
type assistRequest struct {
	Mode    json.RawMessage `json:"mode"`
	Prompt  json.RawMessage `json:"prompt"`
	Answers []models.QAItem `json:"answers"`
}

// AIAssist handles POST /api/ai-assist. Without a mode it returns a quick
// suggestion bundle, with mode "questions" discovery questions, and with
// mode "generate" a bundle informed by the supplied answers.
func (a *Assist) AIAssist(w http.ResponseWriter, r *http.Request) {
	if !a.providers.HasActive() {
		writeError(w, http.StatusInternalServerError, msgNotConfigured)
		return
	}

	var req assistRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if tooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, msgRequestTooLarge)
			return
		}
		slog.Warn("ai assist body rejected", "error", err)
		writeError(w, http.StatusInternalServerError, msgProcessingFailed)
		return
	}

	// Only an absent, null, empty or non-string prompt is rejected; a
	// whitespace-only prompt is passed on.
	var prompt string
	if len(req.Prompt) == 0 || json.Unmarshal(req.Prompt, &prompt) != nil || prompt == "" {
		writeError(w, http.StatusBadRequest, msgPromptRequired)
		return
	}

	var mode suggest.Mode
	if len(req.Mode) > 0 && json.Unmarshal(req.Mode, &mode) != nil || !mode.Valid() {
		writeError(w, http.StatusBadRequest, msgInvalidMode)
		return
	}

	ctx := r.Context()
	switch mode {
	case suggest.ModeQuestions:
		questions, err := a.suggester.DiscoveryQuestions(ctx, prompt)
		if err != nil {
			a.fail(w, "discovery questions", err)
			return
		}
		writeJSON(w, http.StatusOK, questions)

	case suggest.ModeGenerate:
		answers := req.Answers
		if answers == nil {
			answers = []models.QAItem{}
		}
		suggestions, err := a.suggester.GenerateWithContext(ctx, prompt, answers)
		if err != nil {
			a.fail(w, "generate with context", err)
			return
		}
		a.respondSuggestions(w, suggestions)

	default:
		suggestions, err := a.suggester.QuickGenerate(ctx, prompt)
		if err != nil {
			a.fail(w, "quick generate", err)
			return
		}
		a.respondSuggestions(w, suggestions)
	}
}

// respondSuggestions narrows the bundle to the closed value sets before
// sending it; the AI output is never passed through verbatim.
func (a *Assist) respondSuggestions(w http.ResponseWriter, s *models.AISuggestions) {
	if coerced := suggest.Narrow(s); len(coerced) > 0 {
		slog.Warn("coerced ai suggestion fields", "fields", coerced)
	}
	writeJSON(w, http.StatusOK, s)
}

// fail logs err and answers with the fixed message for its category.
func (a *Assist) fail(w http.ResponseWriter, op string, err error) {
	slog.Error("ai assist failed", "op", op, "error", err)

	msg := msgProcessingFailed
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		msg = msgNotConfigured
	case errors.Is(err, suggest.ErrUpstream):
		msg = msgSuggestFailed
	case errors.Is(err, suggest.ErrEmptyResponse):
		msg = msgNoResponse
	case errors.Is(err, suggest.ErrMalformedResponse):
		msg = msgProcessingFailed
	}
	writeError(w, http.StatusInternalServerError, msg)
}

// applyRequest is the body of POST /api/suggestions/apply. Missing config
// fields keep their defaults.
type applyRequest struct {
	Config      models.PromptConfig  `json:"config"`
	Suggestions models.AISuggestions `json:"suggestions"`
}

// applyResponse carries the merged configuration and the suggestion fields
// that had to be coerced into range.
type applyResponse struct {
	Config  models.PromptConfig `json:"config"`
	Coerced []string            `json:"coerced"`
}

// ApplySuggestions handles POST /api/suggestions/apply: the "Apply All"
// action of the wizard, performed server-side.
func (a *Assist) ApplySuggestions(w http.ResponseWriter, r *http.Request) {
	req := applyRequest{Config: models.DefaultPromptConfig()}
	if err := decodeJSON(w, r, &req); err != nil {
		if tooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, msgRequestTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	req.Config.Normalize()
	if err := req.Config.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	coerced := suggest.Narrow(&req.Suggestions)
	if coerced == nil {
		coerced = []string{}
	}

	writeJSON(w, http.StatusOK, applyResponse{
		Config:  suggest.Apply(req.Config, req.Suggestions),
		Coerced: coerced,
	})
}
