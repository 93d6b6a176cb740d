// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"
	"testing"

	"promptwizard/internal/models"
)

func TestThemeByID(t *testing.T) {
	tests := []struct {
		id     string
		wantID string
	}{
		{id: "purple-tech", wantID: "purple-tech"},
		{id: "ocean-blue", wantID: "ocean-blue"},
		{id: "midnight-dark", wantID: "midnight-dark"},
		{id: "", wantID: "purple-tech"},
		{id: "does-not-exist", wantID: "purple-tech"},
		{id: "OCEAN-BLUE", wantID: "purple-tech"},
	}

	for _, tt := range tests {
		t.Run("id="+tt.id, func(t *testing.T) {
			if got := ThemeByID(tt.id).ID; got != tt.wantID {
				t.Errorf("ThemeByID(%q).ID = %q, want %q", tt.id, got, tt.wantID)
			}
		})
	}
}

func TestThemeByID_UnknownEqualsDefault(t *testing.T) {
	if ThemeByID("nope") != ThemeByID(models.DefaultThemeID) {
		t.Error("unknown id should resolve to the same theme as the default id")
	}
	if Themes()[0].ID != models.DefaultThemeID {
		t.Errorf("first catalog theme = %q, want %q", Themes()[0].ID, models.DefaultThemeID)
	}
}

func TestThemes_ReturnsCopy(t *testing.T) {
	list := Themes()
	list[0].Name = "mutated"
	if ThemeByID("purple-tech").Name != "Purple Tech" {
		t.Error("Themes() exposes the backing array")
	}
}

func TestHasTheme(t *testing.T) {
	if !HasTheme("forest-green") {
		t.Error("HasTheme(forest-green) = false")
	}
	if HasTheme("neon") {
		t.Error("HasTheme(neon) = true")
	}
}

func TestThemeCSSVars(t *testing.T) {
	css := ThemeCSSVars(ThemeByID("sunset-orange"))
	lines := strings.Split(strings.TrimSuffix(css, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want 11:\n%s", len(lines), css)
	}
	if lines[0] != "--accent: #F97316;" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[10] != "--danger: #EF4444;" {
		t.Errorf("last line = %q", lines[10])
	}
}

func TestOptionsLabel(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		value   string
		want    string
	}{
		{name: "frontend hit", options: FrontendOptions, value: "nextjs", want: "Next.js 14+ (App Router)"},
		{name: "database hit", options: DatabaseOptions, value: "planetscale", want: "PlanetScale"},
		{name: "automation hit", options: BackendAutomationOptions, value: "n8n", want: "n8n (workflow automation)"},
		{name: "miss", options: HostingOptions, value: "heroku", want: UnknownLabel},
		{name: "empty", options: AIOptions, value: "", want: UnknownLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.options.Label(tt.value); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// TestOptionsMatchClosedSets verifies every option list covers exactly the
// closed value set of its model field.
func TestOptionsMatchClosedSets(t *testing.T) {
	check := func(name string, opts Options, values []string) {
		t.Helper()
		if len(opts) != len(values) {
			t.Errorf("%s: %d options, %d legal values", name, len(opts), len(values))
			return
		}
		for i, v := range values {
			if opts[i].Value != v {
				t.Errorf("%s[%d] = %q, want %q", name, i, opts[i].Value, v)
			}
		}
	}

	check("app types", AppTypeOptions, toStrings(models.AppTypes))
	check("frontends", FrontendOptions, toStrings(models.Frontends))
	check("databases", DatabaseOptions, toStrings(models.Databases))
	check("auths", AuthOptions, toStrings(models.Auths))
	check("hostings", HostingOptions, toStrings(models.Hostings))
	check("automation", BackendAutomationOptions, toStrings(models.BackendAutomations))
	check("ai", AIOptions, toStrings(models.AIProviders))
	check("marketing", MarketingOptions, toStrings(models.Marketings))
	check("color modes", ColorModeOptions, toStrings(models.ColorModes))
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func TestAll(t *testing.T) {
	c := All()
	if len(c.Themes) != 5 {
		t.Errorf("themes = %d, want 5", len(c.Themes))
	}
	if len(c.StacksByAppType) != len(models.AppTypes) {
		t.Errorf("stacks = %d, want %d", len(c.StacksByAppType), len(models.AppTypes))
	}
	if c.StacksByAppType[models.AppTypeAPI].Hosting != models.HostingRailway {
		t.Errorf("api stack hosting = %q, want railway", c.StacksByAppType[models.AppTypeAPI].Hosting)
	}
	if c.Defaults.Theme != models.DefaultThemeID {
		t.Errorf("defaults theme = %q", c.Defaults.Theme)
	}
}
