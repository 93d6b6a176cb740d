// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Limits on free-text fields accepted at the API boundary.
const (
	MaxProjectNameLen  = 200
	MaxOneLinerLen     = 300
	MaxTargetUserLen   = 500
	MaxFeatures        = 50
	MaxFeatureLen      = 300
	MaxDBTablesLen     = 20_000
	MaxRequirementsLen = 10_000
	MaxConfigNameLen   = 200

	// ShipByLayout is the calendar format of PromptConfig.ShipBy.
	ShipByLayout = "2006-01-02"
)

// ValidationError reports a single rejected field. Its message is safe to
// show to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks every enumerated field against its closed set, the ship
// date against ShipByLayout, and the free-text length limits. It returns the
// first problem found. The theme id is not checked: unknown themes resolve
// to the catalog default.
func (c PromptConfig) Validate() error {
	if !c.AppType.Valid() {
		return invalid("appType", "Unknown app type %q.", c.AppType)
	}
	if !c.ColorMode.Valid() {
		return invalid("colorMode", "Unknown color mode %q.", c.ColorMode)
	}
	if bad := c.TechStack.InvalidFields(); len(bad) > 0 {
		return invalid("techStack."+bad[0], "Unknown tech stack value for %s.", bad[0])
	}
	if c.ShipBy != "" {
		if _, err := time.Parse(ShipByLayout, c.ShipBy); err != nil {
			return invalid("shipBy", "Ship date must be a calendar date (YYYY-MM-DD).")
		}
	}
	if utf8.RuneCountInString(c.ProjectName) > MaxProjectNameLen {
		return invalid("projectName", "Project name is too long (max %d characters).", MaxProjectNameLen)
	}
	if utf8.RuneCountInString(c.OneLiner) > MaxOneLinerLen {
		return invalid("oneLiner", "One-liner is too long (max %d characters).", MaxOneLinerLen)
	}
	if utf8.RuneCountInString(c.TargetUser) > MaxTargetUserLen {
		return invalid("targetUser", "Target user is too long (max %d characters).", MaxTargetUserLen)
	}
	if len(c.CustomFeatures) > MaxFeatures {
		return invalid("customFeatures", "Too many custom features (max %d).", MaxFeatures)
	}
	for _, f := range c.CustomFeatures {
		if utf8.RuneCountInString(f) > MaxFeatureLen {
			return invalid("customFeatures", "Custom feature is too long (max %d characters).", MaxFeatureLen)
		}
	}
	if utf8.RuneCountInString(c.CustomDBTables) > MaxDBTablesLen {
		return invalid("customDbTables", "Database tables are too long (max %d characters).", MaxDBTablesLen)
	}
	if utf8.RuneCountInString(c.SpecialRequirements) > MaxRequirementsLen {
		return invalid("specialRequirements", "Special requirements are too long (max %d characters).", MaxRequirementsLen)
	}
	return nil
}

// ValidateConfigName checks the display name of a saved configuration.
func ValidateConfigName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("name", "Please enter a name")
	}
	if utf8.RuneCountInString(name) > MaxConfigNameLen {
		return invalid("name", "Name is too long (max %d characters).", MaxConfigNameLen)
	}
	return nil
}
