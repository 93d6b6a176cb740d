// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package suggest

import (
	"slices"
	"strings"

	"promptwizard/internal/catalog"
	"promptwizard/internal/models"
)

// Narrow coerces every enumerated field of s into its closed value set and
// returns the JSON paths of the fields it changed. An unknown app type
// becomes "other", an unknown theme becomes the first catalog theme, and an
// unknown stack value becomes the recommended value for the (narrowed) app
// type. Absent (empty) values are left empty so Apply keeps the current
// setting. Free-text fields are trimmed and blank list entries dropped.
func Narrow(s *models.AISuggestions) []string {
	var coerced []string

	if s.AppType != "" && !s.AppType.Valid() {
		s.AppType = models.AppTypeOther
		coerced = append(coerced, "appType")
	}

	if s.Theme != "" && !catalog.HasTheme(s.Theme) {
		s.Theme = catalog.Themes()[0].ID
		coerced = append(coerced, "theme")
	}

	rec := models.RecommendedStack(s.AppType)
	ts := &s.TechStack
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"frontend", narrowField(&ts.Frontend, models.Frontends, rec.Frontend)},
		{"database", narrowField(&ts.Database, models.Databases, rec.Database)},
		{"auth", narrowField(&ts.Auth, models.Auths, rec.Auth)},
		{"hosting", narrowField(&ts.Hosting, models.Hostings, rec.Hosting)},
		{"backendAutomation", narrowField(&ts.BackendAutomation, models.BackendAutomations, rec.BackendAutomation)},
		{"ai", narrowField(&ts.AI, models.AIProviders, rec.AI)},
		{"marketing", narrowField(&ts.Marketing, models.Marketings, rec.Marketing)},
	} {
		if f.ok {
			coerced = append(coerced, "techStack."+f.name)
		}
	}

	s.ProjectNames = compact(s.ProjectNames)
	s.OneLiners = compact(s.OneLiners)
	s.CustomFeatures = compact(s.CustomFeatures)
	s.TargetUser = strings.TrimSpace(s.TargetUser)
	s.SpecialRequirements = strings.TrimSpace(s.SpecialRequirements)
	s.CustomDBTables = strings.TrimSpace(s.CustomDBTables)

	return coerced
}

// narrowField replaces a non-empty *v outside set with fallback and reports
// whether it did.
func narrowField[T ~string](v *T, set []T, fallback T) bool {
	if *v == "" || slices.Contains(set, *v) {
		return false
	}
	*v = fallback
	return true
}

// compact trims entries and drops blanks. It never returns nil so the JSON
// encoding is always an array.
func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
