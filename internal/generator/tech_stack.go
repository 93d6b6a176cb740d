// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"promptwizard/internal/catalog"
	"promptwizard/internal/models"
)

// automationUndecided replaces the automation label when the assistant is
// left to choose.
const automationUndecided = "n8n or Supabase Edge Functions (Claude picks best)"

// DescribeTechStack renders the TECH STACK block. The auth, error tracking,
// AI and marketing lines are omitted when unused; unknown values render as
// catalog.UnknownLabel.
func DescribeTechStack(cfg models.PromptConfig) string {
	ts := cfg.TechStack

	lines := []string{
		"Frontend: " + catalog.FrontendOptions.Label(string(ts.Frontend)),
		"Database: " + catalog.DatabaseOptions.Label(string(ts.Database)),
	}

	if ts.Auth != models.AuthNone {
		lines = append(lines, "Auth: "+catalog.AuthOptions.Label(string(ts.Auth)))
	}

	lines = append(lines, "Deployment: "+catalog.HostingOptions.Label(string(ts.Hosting)))

	if ts.BackendAutomation == models.AutomationClaudePicks {
		lines = append(lines, "Backend Automation: "+automationUndecided)
	} else {
		lines = append(lines, "Backend Automation: "+catalog.BackendAutomationOptions.Label(string(ts.BackendAutomation)))
	}

	if cfg.IncludeFuzzySearch {
		lines = append(lines, "Search: Fuse.js (fuzzy search on all search inputs)")
	}
	if cfg.IncludeToasts {
		lines = append(lines, "Toasts: sonner or react-hot-toast")
	}
	lines = append(lines, "Date picker: react-day-picker")
	if cfg.IncludeSentry {
		lines = append(lines, "Error tracking: Sentry")
	}

	if ts.AI != models.AINone {
		lines = append(lines, "AI/LLM: "+catalog.AIOptions.Label(string(ts.AI)))
	}
	if ts.Marketing != models.MarketingNone {
		lines = append(lines, "Marketing: "+catalog.MarketingOptions.Label(string(ts.Marketing)))
	}

	return "TECH STACK\n" + bulletList(lines)
}

// stackSummary is the short comma-separated stack line used in HANDOFF.md.
// It uses raw values except for the Next.js frontend.
func stackSummary(ts models.TechStack) string {
	frontend := string(ts.Frontend)
	if ts.Frontend == models.FrontendNextJS {
		frontend = "Next.js 14"
	}
	return frontend + ", " + string(ts.Database) + ", " + string(ts.Hosting)
}
