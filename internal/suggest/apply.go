// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package suggest

import "promptwizard/internal/models"

// Apply merges a narrowed suggestion bundle into cfg the way the wizard's
// "Apply All" action does and returns the result; cfg itself is untouched.
//
// The first project name and one-liner win. Target user, special
// requirements and theme are replaced. The app type is set, which overlays
// its recommended stack, and then every non-empty field of the suggested
// stack is applied on top. Suggested features are appended to the existing
// list. Database notes replace the current ones only when present. The
// narrative MVPScope and KeyDecisions fields are not copied.
func Apply(cfg models.PromptConfig, s models.AISuggestions) models.PromptConfig {
	out := cfg.Clone()

	if len(s.ProjectNames) > 0 {
		out.ProjectName = s.ProjectNames[0]
	}
	if len(s.OneLiners) > 0 {
		out.OneLiner = s.OneLiners[0]
	}
	out.TargetUser = s.TargetUser
	out.SpecialRequirements = s.SpecialRequirements
	if s.Theme != "" {
		out.Theme = s.Theme
	}

	if s.AppType != "" {
		out.SetAppType(s.AppType)
	}
	overlayStack(&out.TechStack, s.TechStack)

	out.AddCustomFeatures(s.CustomFeatures)
	if s.CustomDBTables != "" {
		out.CustomDBTables = s.CustomDBTables
	}

	return out
}

// overlayStack copies every non-empty field of src onto dst.
func overlayStack(dst *models.TechStack, src models.TechStack) {
	if src.Frontend != "" {
		dst.Frontend = src.Frontend
	}
	if src.Database != "" {
		dst.Database = src.Database
	}
	if src.Auth != "" {
		dst.Auth = src.Auth
	}
	if src.Hosting != "" {
		dst.Hosting = src.Hosting
	}
	if src.BackendAutomation != "" {
		dst.BackendAutomation = src.BackendAutomation
	}
	if src.AI != "" {
		dst.AI = src.AI
	}
	if src.Marketing != "" {
		dst.Marketing = src.Marketing
	}
}
