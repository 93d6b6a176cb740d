// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the static lookup tables the wizard offers: the
// color themes and the labelled option lists for every selectable field.
package catalog

import (
	"fmt"
	"strings"
)

// Colors is the eleven-color palette of a theme.
type Colors struct {
	Accent        string `json:"accent"`
	AccentHover   string `json:"accentHover"`
	BgDark        string `json:"bgDark"`
	BgCard        string `json:"bgCard"`
	BgElevated    string `json:"bgElevated"`
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	Border        string `json:"border"`
	Success       string `json:"success"`
	Warning       string `json:"warning"`
	Danger        string `json:"danger"`
}

// Theme is a named, immutable color palette.
type Theme struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Colors Colors `json:"colors"`
}

// status colors shared by every theme.
const (
	success = "#10B981"
	warning = "#F59E0B"
	danger  = "#EF4444"
)

var themes = []Theme{
	{
		ID: "purple-tech", Name: "Purple Tech",
		Colors: Colors{
			Accent: "#8B5CF6", AccentHover: "#7C3AED",
			BgDark: "#0F0F1A", BgCard: "#1A1A2E", BgElevated: "#252542",
			TextPrimary: "#F8FAFC", TextSecondary: "#94A3B8", Border: "#334155",
			Success: success, Warning: warning, Danger: danger,
		},
	},
	{
		ID: "ocean-blue", Name: "Ocean Blue",
		Colors: Colors{
			Accent: "#3B82F6", AccentHover: "#2563EB",
			BgDark: "#0A1628", BgCard: "#152238", BgElevated: "#1E3A5F",
			TextPrimary: "#F8FAFC", TextSecondary: "#94A3B8", Border: "#334155",
			Success: success, Warning: warning, Danger: danger,
		},
	},
	{
		ID: "forest-green", Name: "Forest Green",
		Colors: Colors{
			Accent: "#10B981", AccentHover: "#059669",
			BgDark: "#0A1A14", BgCard: "#132A21", BgElevated: "#1C3D2E",
			TextPrimary: "#F8FAFC", TextSecondary: "#94A3B8", Border: "#334155",
			Success: success, Warning: warning, Danger: danger,
		},
	},
	{
		ID: "sunset-orange", Name: "Sunset Orange",
		Colors: Colors{
			Accent: "#F97316", AccentHover: "#EA580C",
			BgDark: "#1A0F0A", BgCard: "#2E1A13", BgElevated: "#42251C",
			TextPrimary: "#F8FAFC", TextSecondary: "#94A3B8", Border: "#334155",
			Success: success, Warning: warning, Danger: danger,
		},
	},
	{
		ID: "midnight-dark", Name: "Midnight Dark",
		Colors: Colors{
			Accent: "#A78BFA", AccentHover: "#8B5CF6",
			BgDark: "#09090B", BgCard: "#18181B", BgElevated: "#27272A",
			TextPrimary: "#FAFAFA", TextSecondary: "#A1A1AA", Border: "#3F3F46",
			Success: success, Warning: warning, Danger: danger,
		},
	},
}

// Themes returns the catalog in display order. The first entry is the
// fallback for unknown ids.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// ThemeByID resolves a theme id. Unknown ids resolve to the first catalog
// entry; the lookup never fails.
func ThemeByID(id string) Theme {
	for _, t := range themes {
		if t.ID == id {
			return t
		}
	}
	return themes[0]
}

// HasTheme reports whether id names a catalog theme.
func HasTheme(id string) bool {
	for _, t := range themes {
		if t.ID == id {
			return true
		}
	}
	return false
}

// ThemeCSSVars renders the palette as CSS custom property declarations, one
// per line.
func ThemeCSSVars(t Theme) string {
	c := t.Colors
	vars := [][2]string{
		{"accent", c.Accent},
		{"accent-hover", c.AccentHover},
		{"bg-dark", c.BgDark},
		{"bg-card", c.BgCard},
		{"bg-elevated", c.BgElevated},
		{"text-primary", c.TextPrimary},
		{"text-secondary", c.TextSecondary},
		{"border", c.Border},
		{"success", c.Success},
		{"warning", c.Warning},
		{"danger", c.Danger},
	}

	var b strings.Builder
	for _, v := range vars {
		fmt.Fprintf(&b, "--%s: %s;\n", v[0], v[1])
	}
	return b.String()
}
