// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "promptwizard/internal/models"

// UnknownLabel is the display text for a value missing from its option list.
const UnknownLabel = "Unknown"

// Option is one selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options is an ordered option list for a single field.
type Options []Option

// Label returns the display label for value, or UnknownLabel on a miss.
func (o Options) Label(value string) string {
	for _, opt := range o {
		if opt.Value == value {
			return opt.Label
		}
	}
	return UnknownLabel
}

// Option lists for every selectable field, in display order.
var (
	AppTypeOptions = Options{
		{string(models.AppTypeSaaS), "SaaS Application"},
		{string(models.AppTypeDashboard), "Dashboard / Admin Panel"},
		{string(models.AppTypeEcommerce), "E-commerce"},
		{string(models.AppTypeLanding), "Landing Page"},
		{string(models.AppTypeAPI), "API / Backend Service"},
		{string(models.AppTypeOther), "Other"},
	}

	FrontendOptions = Options{
		{string(models.FrontendNextJS), "Next.js 14+ (App Router)"},
		{string(models.FrontendRemix), "Remix"},
		{string(models.FrontendAstro), "Astro"},
	}

	DatabaseOptions = Options{
		{string(models.DatabaseSupabase), "Supabase (Postgres)"},
		{string(models.DatabaseFirebase), "Firebase"},
		{string(models.DatabasePlanetScale), "PlanetScale"},
		{string(models.DatabaseNone), "None"},
	}

	AuthOptions = Options{
		{string(models.AuthSupabase), "Supabase Auth"},
		{string(models.AuthClerk), "Clerk"},
		{string(models.AuthNextAuth), "NextAuth.js"},
		{string(models.AuthNone), "None"},
	}

	HostingOptions = Options{
		{string(models.HostingNetlify), "Netlify"},
		{string(models.HostingVercel), "Vercel"},
		{string(models.HostingRailway), "Railway"},
	}

	BackendAutomationOptions = Options{
		{string(models.AutomationN8N), "n8n (workflow automation)"},
		{string(models.AutomationEdgeFunctions), "Supabase Edge Functions"},
		{string(models.AutomationClaudePicks), "Claude picks best for project"},
	}

	AIOptions = Options{
		{string(models.AIClaude), "Claude API (Anthropic)"},
		{string(models.AIOpenAI), "OpenAI API"},
		{string(models.AINone), "None"},
	}

	MarketingOptions = Options{
		{string(models.MarketingGoHighLevel), "GoHighLevel"},
		{string(models.MarketingNone), "None"},
	}

	ColorModeOptions = Options{
		{string(models.ColorModeDarkOnly), "Dark Mode Only"},
		{string(models.ColorModeLightOnly), "Light Mode Only"},
		{string(models.ColorModeBoth), "Both (with toggle)"},
	}
)

// Catalog is the full option set served to the wizard front end.
type Catalog struct {
	Themes            []Theme                             `json:"themes"`
	AppTypes          Options                             `json:"appTypes"`
	Frontends         Options                             `json:"frontends"`
	Databases         Options                             `json:"databases"`
	Auths             Options                             `json:"auths"`
	Hostings          Options                             `json:"hostings"`
	BackendAutomation Options                             `json:"backendAutomation"`
	AIs               Options                             `json:"ai"`
	Marketing         Options                             `json:"marketing"`
	ColorModes        Options                             `json:"colorModes"`
	StacksByAppType   map[models.AppType]models.TechStack `json:"stacksByAppType"`
	Defaults          models.PromptConfig                 `json:"defaults"`
}

// All assembles the complete catalog.
func All() Catalog {
	stacks := make(map[models.AppType]models.TechStack, len(models.AppTypes))
	for _, at := range models.AppTypes {
		stacks[at] = models.RecommendedStack(at)
	}
	return Catalog{
		Themes:            Themes(),
		AppTypes:          AppTypeOptions,
		Frontends:         FrontendOptions,
		Databases:         DatabaseOptions,
		Auths:             AuthOptions,
		Hostings:          HostingOptions,
		BackendAutomation: BackendAutomationOptions,
		AIs:               AIOptions,
		Marketing:         MarketingOptions,
		ColorModes:        ColorModeOptions,
		StacksByAppType:   stacks,
		Defaults:          models.DefaultPromptConfig(),
	}
}
