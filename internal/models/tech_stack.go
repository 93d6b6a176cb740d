// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Frontend is the UI framework choice.
type Frontend string

const (
	FrontendNextJS Frontend = "nextjs"
	FrontendRemix  Frontend = "remix"
	FrontendAstro  Frontend = "astro"
)

// Database is the data store choice.
type Database string

const (
	DatabaseSupabase    Database = "supabase"
	DatabaseFirebase    Database = "firebase"
	DatabasePlanetScale Database = "planetscale"
	DatabaseNone        Database = "none"
)

// Auth is the authentication provider choice.
type Auth string

const (
	AuthSupabase Auth = "supabase"
	AuthClerk    Auth = "clerk"
	AuthNextAuth Auth = "nextauth"
	AuthNone     Auth = "none"
)

// Hosting is the deployment target.
type Hosting string

const (
	HostingNetlify Hosting = "netlify"
	HostingVercel  Hosting = "vercel"
	HostingRailway Hosting = "railway"
)

// BackendAutomation is the server-side automation style. ClaudePicks is the
// sentinel meaning "let the assistant decide".
type BackendAutomation string

const (
	AutomationN8N           BackendAutomation = "n8n"
	AutomationEdgeFunctions BackendAutomation = "edge-functions"
	AutomationClaudePicks   BackendAutomation = "claude-picks"
)

// AIProvider is the LLM vendor the generated app integrates with.
type AIProvider string

const (
	AIClaude AIProvider = "claude"
	AIOpenAI AIProvider = "openai"
	AINone   AIProvider = "none"
)

// Marketing is the marketing-platform choice.
type Marketing string

const (
	MarketingGoHighLevel Marketing = "gohighlevel"
	MarketingNone        Marketing = "none"
)

// Closed value sets, in display order.
var (
	Frontends          = []Frontend{FrontendNextJS, FrontendRemix, FrontendAstro}
	Databases          = []Database{DatabaseSupabase, DatabaseFirebase, DatabasePlanetScale, DatabaseNone}
	Auths              = []Auth{AuthSupabase, AuthClerk, AuthNextAuth, AuthNone}
	Hostings           = []Hosting{HostingNetlify, HostingVercel, HostingRailway}
	BackendAutomations = []BackendAutomation{AutomationN8N, AutomationEdgeFunctions, AutomationClaudePicks}
	AIProviders        = []AIProvider{AIClaude, AIOpenAI, AINone}
	Marketings         = []Marketing{MarketingGoHighLevel, MarketingNone}
)

// TechStack holds the seven enumerated technology choices.
type TechStack struct {
	Frontend          Frontend          `json:"frontend"`
	Database          Database          `json:"database"`
	Auth              Auth              `json:"auth"`
	Hosting           Hosting           `json:"hosting"`
	BackendAutomation BackendAutomation `json:"backendAutomation"`
	AI                AIProvider        `json:"ai"`
	Marketing         Marketing         `json:"marketing"`
}

// DefaultTechStack is the stack of a fresh configuration.
func DefaultTechStack() TechStack {
	return TechStack{
		Frontend:          FrontendNextJS,
		Database:          DatabaseSupabase,
		Auth:              AuthSupabase,
		Hosting:           HostingNetlify,
		BackendAutomation: AutomationClaudePicks,
		AI:                AIClaude,
		Marketing:         MarketingNone,
	}
}

// recommendedStacks maps each project category to its suggested bundle.
var recommendedStacks = map[AppType]TechStack{
	AppTypeSaaS: {
		Frontend: FrontendNextJS, Database: DatabaseSupabase, Auth: AuthSupabase, Hosting: HostingNetlify,
		BackendAutomation: AutomationEdgeFunctions, AI: AIClaude, Marketing: MarketingGoHighLevel,
	},
	AppTypeDashboard: {
		Frontend: FrontendNextJS, Database: DatabaseSupabase, Auth: AuthSupabase, Hosting: HostingNetlify,
		BackendAutomation: AutomationEdgeFunctions, AI: AINone, Marketing: MarketingNone,
	},
	AppTypeEcommerce: {
		Frontend: FrontendNextJS, Database: DatabaseSupabase, Auth: AuthSupabase, Hosting: HostingNetlify,
		BackendAutomation: AutomationN8N, AI: AINone, Marketing: MarketingGoHighLevel,
	},
	AppTypeLanding: {
		Frontend: FrontendAstro, Database: DatabaseNone, Auth: AuthNone, Hosting: HostingNetlify,
		BackendAutomation: AutomationClaudePicks, AI: AINone, Marketing: MarketingGoHighLevel,
	},
	AppTypeAPI: {
		Frontend: FrontendNextJS, Database: DatabaseSupabase, Auth: AuthSupabase, Hosting: HostingRailway,
		BackendAutomation: AutomationEdgeFunctions, AI: AIClaude, Marketing: MarketingNone,
	},
	AppTypeOther: {
		Frontend: FrontendNextJS, Database: DatabaseSupabase, Auth: AuthSupabase, Hosting: HostingNetlify,
		BackendAutomation: AutomationClaudePicks, AI: AINone, Marketing: MarketingNone,
	},
}

// RecommendedStack returns the suggested bundle for an app type. Unknown
// types get the bundle for AppTypeOther.
func RecommendedStack(t AppType) TechStack {
	if s, ok := recommendedStacks[t]; ok {
		return s
	}
	return recommendedStacks[AppTypeOther]
}

// FillFrom copies fields of d into s wherever s is empty. Stored rows whose
// tech_stack blob is missing keys are back-filled this way.
func (s *TechStack) FillFrom(d TechStack) {
	if s.Frontend == "" {
		s.Frontend = d.Frontend
	}
	if s.Database == "" {
		s.Database = d.Database
	}
	if s.Auth == "" {
		s.Auth = d.Auth
	}
	if s.Hosting == "" {
		s.Hosting = d.Hosting
	}
	if s.BackendAutomation == "" {
		s.BackendAutomation = d.BackendAutomation
	}
	if s.AI == "" {
		s.AI = d.AI
	}
	if s.Marketing == "" {
		s.Marketing = d.Marketing
	}
}

// InvalidFields returns the JSON names of every field holding a value
// outside its closed set, in declaration order.
func (s TechStack) InvalidFields() []string {
	var bad []string
	if !contains(Frontends, s.Frontend) {
		bad = append(bad, "frontend")
	}
	if !contains(Databases, s.Database) {
		bad = append(bad, "database")
	}
	if !contains(Auths, s.Auth) {
		bad = append(bad, "auth")
	}
	if !contains(Hostings, s.Hosting) {
		bad = append(bad, "hosting")
	}
	if !contains(BackendAutomations, s.BackendAutomation) {
		bad = append(bad, "backendAutomation")
	}
	if !contains(AIProviders, s.AI) {
		bad = append(bad, "ai")
	}
	if !contains(Marketings, s.Marketing) {
		bad = append(bad, "marketing")
	}
	return bad
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
