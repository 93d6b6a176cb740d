// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the configuration record edited by the wizard, the
// enumerated option sets it is built from, and the shapes exchanged with the
// suggestion endpoint and the persistence layer.
package models

import "strings"

// AppType is the project category chosen in the wizard.
type AppType string

const (
	AppTypeSaaS      AppType = "saas"
	AppTypeDashboard AppType = "dashboard"
	AppTypeEcommerce AppType = "ecommerce"
	AppTypeLanding   AppType = "landing"
	AppTypeAPI       AppType = "api"
	AppTypeOther     AppType = "other"
)

// AppTypes lists every legal AppType in display order.
var AppTypes = []AppType{AppTypeSaaS, AppTypeDashboard, AppTypeEcommerce, AppTypeLanding, AppTypeAPI, AppTypeOther}

// ColorMode selects which color schemes the generated app supports.
type ColorMode string

const (
	ColorModeDarkOnly  ColorMode = "dark-only"
	ColorModeLightOnly ColorMode = "light-only"
	ColorModeBoth      ColorMode = "both"
)

// ColorModes lists every legal ColorMode in display order.
var ColorModes = []ColorMode{ColorModeDarkOnly, ColorModeLightOnly, ColorModeBoth}

// DefaultThemeID is the theme assigned to a fresh configuration. It is also
// the first entry of the theme catalog.
const DefaultThemeID = "purple-tech"

// PromptConfig is the single structured record of all user-editable project
// settings. Every generated document is derived from it.
type PromptConfig struct {
	ProjectName string  `json:"projectName"`
	OneLiner    string  `json:"oneLiner"`
	ShipBy      string  `json:"shipBy"` // YYYY-MM-DD or empty
	TargetUser  string  `json:"targetUser"`
	AppType     AppType `json:"appType"`

	TechStack TechStack `json:"techStack"`

	Theme     string    `json:"theme"`
	ColorMode ColorMode `json:"colorMode"`

	IncludeSentry      bool `json:"includeSentry"`
	IncludeFuzzySearch bool `json:"includeFuzzySearch"`
	IncludeToasts      bool `json:"includeToasts"`

	CustomFeatures      []string `json:"customFeatures"`
	CustomDBTables      string   `json:"customDbTables"`
	SpecialRequirements string   `json:"specialRequirements"`
}

// DefaultPromptConfig returns the configuration a new wizard session starts
// with. Each call returns an independent value.
func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		AppType:            AppTypeSaaS,
		TechStack:          DefaultTechStack(),
		Theme:              DefaultThemeID,
		ColorMode:          ColorModeDarkOnly,
		IncludeSentry:      true,
		IncludeFuzzySearch: true,
		IncludeToasts:      true,
		CustomFeatures:     []string{},
	}
}

// SetAppType switches the project category and overlays the recommended
// technology bundle for it onto the current stack.
func (c *PromptConfig) SetAppType(t AppType) {
	c.AppType = t
	c.TechStack = RecommendedStack(t)
}

// AddCustomFeature appends a trimmed feature. Blank input is ignored.
func (c *PromptConfig) AddCustomFeature(feature string) {
	feature = strings.TrimSpace(feature)
	if feature == "" {
		return
	}
	c.CustomFeatures = append(c.CustomFeatures, feature)
}

// AddCustomFeatures appends every non-blank feature in order.
func (c *PromptConfig) AddCustomFeatures(features []string) {
	for _, f := range features {
		c.AddCustomFeature(f)
	}
}

// RemoveCustomFeature drops the feature at index i. Out-of-range indexes are
// a no-op.
func (c *PromptConfig) RemoveCustomFeature(i int) {
	if i < 0 || i >= len(c.CustomFeatures) {
		return
	}
	out := make([]string, 0, len(c.CustomFeatures)-1)
	out = append(out, c.CustomFeatures[:i]...)
	out = append(out, c.CustomFeatures[i+1:]...)
	c.CustomFeatures = out
}

// Clone returns a deep copy so callers can mutate the result without
// affecting the original's feature slice.
func (c PromptConfig) Clone() PromptConfig {
	out := c
	out.CustomFeatures = append([]string{}, c.CustomFeatures...)
	return out
}

// Normalize back-fills empty enumerated fields with their defaults. Values
// that are present but outside their closed set are left for Validate.
func (c *PromptConfig) Normalize() {
	d := DefaultPromptConfig()
	if c.AppType == "" {
		c.AppType = d.AppType
	}
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.ColorMode == "" {
		c.ColorMode = d.ColorMode
	}
	if c.CustomFeatures == nil {
		c.CustomFeatures = []string{}
	}
	c.TechStack.FillFrom(d.TechStack)
}

// Valid reports whether t belongs to the closed AppType set.
func (t AppType) Valid() bool {
	for _, v := range AppTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Valid reports whether m belongs to the closed ColorMode set.
func (m ColorMode) Valid() bool {
	for _, v := range ColorModes {
		if v == m {
			return true
		}
	}
	return false
}
