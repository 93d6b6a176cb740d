// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator turns a PromptConfig into the text documents the user
// copies out of the wizard: the master prompt, PRD, TODO, IDEAS and HANDOFF
// markdown skeletons, and a .env.example file.
//
// Every function here is pure and total. Empty fields are replaced by
// bracketed placeholders, never dropped, and no output embeds the current
// time; "[DATE]" placeholders are literal.
package generator

import (
	"strings"

	"promptwizard/internal/models"
)

// Placeholders substituted for empty configuration fields.
const (
	PlaceholderProjectName  = "[PROJECT NAME]"
	PlaceholderOneLiner     = "[What this app does in one sentence]"
	PlaceholderShipBy       = "[DATE/DEADLINE]"
	PlaceholderTargetUser   = "[Who uses this]"
	PlaceholderDocName      = "[Project Name]"
	PlaceholderHandoffLine  = "[One-liner description]"
	PlaceholderDBTables     = "[Paste schema from PRD or summarize main tables]"
	PlaceholderRequirements = "[Auth needed? Roles? Timezone? Notifications? File uploads?]"
)

// PlaceholderFeatures are the bullets listed when no custom feature is set.
var PlaceholderFeatures = []string{
	"[Feature 1 from PRD]",
	"[Feature 2 from PRD]",
	"[Feature 3 from PRD]",
}

const fence = "```"

// Outputs holds the six generated documents.
type Outputs struct {
	MasterPrompt string `json:"masterPrompt"`
	PRD          string `json:"prdTemplate"`
	TODO         string `json:"todoTemplate"`
	IDEAS        string `json:"ideasTemplate"`
	HANDOFF      string `json:"handoffTemplate"`
	EnvExample   string `json:"envExample"`
}

// Generate computes all six documents for cfg.
func Generate(cfg models.PromptConfig) Outputs {
	return Outputs{
		MasterPrompt: MasterPrompt(cfg),
		PRD:          PRDTemplate(cfg),
		TODO:         TODOTemplate(),
		IDEAS:        IDEASTemplate(),
		HANDOFF:      HANDOFFTemplate(cfg),
		EnvExample:   EnvExample(cfg),
	}
}

// orPlaceholder returns v, or placeholder when v is empty.
func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}

// bulletList renders items as tab-indented "- " bullets, one per line.
func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "\t- " + item
	}
	return strings.Join(lines, "\n")
}
