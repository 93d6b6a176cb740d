// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// AISuggestions is the bundle returned by the suggestion endpoint in quick
// and full generate modes. MVPScope and KeyDecisions are narrative-only and
// never copied into a PromptConfig.
type AISuggestions struct {
	ProjectNames        []string  `json:"projectNames"`
	OneLiners           []string  `json:"oneLiners"`
	AppType             AppType   `json:"appType"`
	TargetUser          string    `json:"targetUser"`
	TechStack           TechStack `json:"techStack"`
	Theme               string    `json:"theme"`
	CustomFeatures      []string  `json:"customFeatures"`
	CustomDBTables      string    `json:"customDbTables,omitempty"`
	SpecialRequirements string    `json:"specialRequirements"`
	MVPScope            string    `json:"mvpScope,omitempty"`
	KeyDecisions        string    `json:"keyDecisions,omitempty"`
}

// AIQuestions is the discovery-mode response: follow-up questions about an
// idea plus a one-sentence summary of it.
type AIQuestions struct {
	Questions []string `json:"questions"`
	Summary   string   `json:"summary"`
}

// QAItem pairs one discovery question with the user's answer.
type QAItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
