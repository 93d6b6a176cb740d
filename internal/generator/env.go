// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"strings"

	"promptwizard/internal/models"
)

// envVar is one variable line; Example is the value written to .env.example.
type envVar struct {
	Name    string
	Example string
}

// envGroup is a block of variables emitted together when its condition holds.
type envGroup struct {
	Title string
	Vars  []envVar
	When  func(models.PromptConfig) bool
}

// envGroups is evaluated in order by both the ENV VARS block and the
// .env.example file. The order is part of the output format.
var envGroups = []envGroup{
	{
		Title: "Supabase",
		Vars: []envVar{
			{"NEXT_PUBLIC_SUPABASE_URL", "your_supabase_url"},
			{"NEXT_PUBLIC_SUPABASE_ANON_KEY", "your_supabase_anon_key"},
			{"SUPABASE_SERVICE_ROLE_KEY", "your_service_role_key"},
		},
		When: func(c models.PromptConfig) bool {
			return c.TechStack.Database == models.DatabaseSupabase || c.TechStack.Auth == models.AuthSupabase
		},
	},
	{
		Title: "Firebase",
		Vars: []envVar{
			{Name: "NEXT_PUBLIC_FIREBASE_API_KEY"},
			{Name: "NEXT_PUBLIC_FIREBASE_AUTH_DOMAIN"},
			{Name: "NEXT_PUBLIC_FIREBASE_PROJECT_ID"},
		},
		When: func(c models.PromptConfig) bool { return c.TechStack.Database == models.DatabaseFirebase },
	},
	{
		Title: "PlanetScale",
		Vars:  []envVar{{Name: "DATABASE_URL"}},
		When:  func(c models.PromptConfig) bool { return c.TechStack.Database == models.DatabasePlanetScale },
	},
	{
		Title: "Clerk",
		Vars: []envVar{
			{Name: "NEXT_PUBLIC_CLERK_PUBLISHABLE_KEY"},
			{Name: "CLERK_SECRET_KEY"},
		},
		When: func(c models.PromptConfig) bool { return c.TechStack.Auth == models.AuthClerk },
	},
	{
		Title: "Sentry",
		Vars:  []envVar{{Name: "NEXT_PUBLIC_SENTRY_DSN"}},
		When:  func(c models.PromptConfig) bool { return c.IncludeSentry },
	},
	{
		Title: "Claude API",
		Vars:  []envVar{{Name: "ANTHROPIC_API_KEY"}},
		When:  func(c models.PromptConfig) bool { return c.TechStack.AI == models.AIClaude },
	},
	{
		Title: "OpenAI",
		Vars:  []envVar{{Name: "OPENAI_API_KEY"}},
		When:  func(c models.PromptConfig) bool { return c.TechStack.AI == models.AIOpenAI },
	},
	{
		Title: "n8n",
		Vars:  []envVar{{Name: "N8N_WEBHOOK_URL"}},
		When:  func(c models.PromptConfig) bool { return c.TechStack.BackendAutomation == models.AutomationN8N },
	},
}

const envVarsHeader = `ENV VARS
	- Document all env vars in /docs/PRD.md Section 7
	- When adding a new env var: update PRD first, then code
	- Never commit .env files

Required (always):
NEXT_PUBLIC_APP_URL=`

// DescribeEnvVars renders the ENV VARS block: the always-required app URL
// followed by every applicable variable group, names only.
func DescribeEnvVars(cfg models.PromptConfig) string {
	var b strings.Builder
	b.WriteString(envVarsHeader)
	for _, g := range envGroups {
		if !g.When(cfg) {
			continue
		}
		for _, v := range g.Vars {
			b.WriteString("\n" + v.Name + "=")
		}
	}
	return b.String()
}

// EnvExample renders the .env.example file: commented groups with example
// values where one is known.
func EnvExample(cfg models.PromptConfig) string {
	var b strings.Builder
	b.WriteString("# App\nNEXT_PUBLIC_APP_URL=http://localhost:3000\n")
	for _, g := range envGroups {
		if !g.When(cfg) {
			continue
		}
		b.WriteString("\n# " + g.Title + "\n")
		for _, v := range g.Vars {
			b.WriteString(v.Name + "=" + v.Example + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}
