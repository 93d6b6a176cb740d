// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package suggest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Failure categories surfaced by the client. Handlers map each to a fixed
// user-facing message; the wrapped detail is for logs only.
var (
	ErrUpstream          = errors.New("suggest: completion request failed")
	ErrEmptyResponse     = errors.New("suggest: empty completion")
	ErrMalformedResponse = errors.New("suggest: completion is not valid JSON")
)

// stripFence removes a surrounding Markdown code fence (with or without a
// language tag) that some models add despite being told not to.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// decode parses a completion as a single JSON object into T.
func decode[T any](content string) (*T, error) {
	body := stripFence(content)
	if body == "" {
		return nil, ErrEmptyResponse
	}

	var out T
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &out, nil
}
