// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package suggest

import (
	"fmt"
	"strings"

	"promptwizard/internal/models"
)

// QuickSystemPrompt instructs the model to turn a bare project description
// into a suggestion bundle.
const QuickSystemPrompt = `You are a helpful assistant that analyzes project descriptions and generates configuration suggestions for web applications.

Given a project description, return a JSON object with these fields:
- projectNames: array of 3 catchy, relevant project name suggestions (camelCase or PascalCase, no spaces)
- oneLiners: array of 3 concise one-liner descriptions (under 60 chars each)
- appType: one of "saas", "dashboard", "ecommerce", "landing", "api", "other"
- targetUser: a brief description of the target user persona
- techStack: object with recommendations:
  - frontend: "nextjs" | "remix" | "astro"
  - database: "supabase" | "firebase" | "planetscale" | "none"
  - auth: "supabase" | "clerk" | "nextauth" | "none"
  - hosting: "netlify" | "vercel" | "railway"
  - backendAutomation: "n8n" | "edge-functions" | "claude-picks"
  - ai: "claude" | "openai" | "none"
  - marketing: "gohighlevel" | "none"
- theme: one of "purple-tech", "ocean-blue", "forest-green", "sunset-orange", "midnight-dark"
- customFeatures: array of 3-5 suggested features based on the project description
- specialRequirements: any special technical requirements inferred from the description

Be practical and match suggestions to the project type. For dashboards, suggest Supabase. For e-commerce, consider auth carefully. Return ONLY valid JSON, no markdown.`

// QuestionsSystemPrompt asks for discovery questions about an idea.
const QuestionsSystemPrompt = `You are a senior product manager helping a solo developer scope a new web application before any code is written.

Given a short project idea, return a JSON object with these fields:
- questions: array of 6 to 8 short, specific questions whose answers would most change the product scope, data model or tech stack (target users, core workflow, data to store, integrations, monetization, auth and roles, scale, deadline)
- summary: one sentence restating the idea as you understand it

Ask one thing per question. Do not number the questions. Return ONLY valid JSON, no markdown.`

// GenerateSystemPrompt asks for a richer suggestion bundle informed by the
// user's answers to discovery questions.
const GenerateSystemPrompt = `You are a senior product manager and software architect. You receive a project idea and the developer's answers to discovery questions, and you produce a complete configuration for a build prompt.

Return a JSON object with these fields:
- projectNames: array of 3 catchy, relevant project name suggestions (camelCase or PascalCase, no spaces)
- oneLiners: array of 3 concise one-liner descriptions (under 60 chars each)
- appType: one of "saas", "dashboard", "ecommerce", "landing", "api", "other"
- targetUser: a specific description of the target user persona drawn from the answers
- techStack: object with recommendations:
  - frontend: "nextjs" | "remix" | "astro"
  - database: "supabase" | "firebase" | "planetscale" | "none"
  - auth: "supabase" | "clerk" | "nextauth" | "none"
  - hosting: "netlify" | "vercel" | "railway"
  - backendAutomation: "n8n" | "edge-functions" | "claude-picks"
  - ai: "claude" | "openai" | "none"
  - marketing: "gohighlevel" | "none"
- theme: one of "purple-tech", "ocean-blue", "forest-green", "sunset-orange", "midnight-dark"
- customFeatures: array of 5-8 MVP features, each a short imperative phrase
- customDbTables: the main database tables, one per line as "table_name: column, column, ..." using snake_case
- specialRequirements: technical requirements implied by the answers (roles, timezones, notifications, file uploads, compliance)
- mvpScope: two or three sentences describing what is in and out of the first release
- keyDecisions: short list of the architectural decisions you made and why, as a single string

Prefer the answers over your own assumptions. Where an answer is blank, choose the simplest option. Return ONLY valid JSON, no markdown.`

// QuickUserPrompt wraps a bare project description.
func QuickUserPrompt(idea string) string {
	return "Project description: " + idea
}

// QuestionsUserPrompt wraps an idea for discovery mode.
func QuestionsUserPrompt(idea string) string {
	return "Project idea: " + idea
}

// GenerateUserPrompt renders the idea followed by the question/answer pairs
// in order. Unanswered questions are kept so the model knows they were asked.
func GenerateUserPrompt(idea string, answers []models.QAItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project idea: %s\n", idea)

	if len(answers) == 0 {
		b.WriteString("\nNo discovery answers were provided.")
		return b.String()
	}

	b.WriteString("\nDiscovery answers:\n")
	for i, qa := range answers {
		answer := strings.TrimSpace(qa.Answer)
		if answer == "" {
			answer = "(no answer)"
		}
		fmt.Fprintf(&b, "\nQ%d: %s\nA%d: %s\n", i+1, strings.TrimSpace(qa.Question), i+1, answer)
	}
	return strings.TrimRight(b.String(), "\n")
}
