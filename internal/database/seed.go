// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"promptwizard/internal/models"
)

// Development account created by Seed.
const (
	DemoEmail    = "demo@promptwizard.local"
	DemoPassword = "demo1234"
)

// Seed populates the database with initial development data: a demo user
// and one saved configuration for it. It does nothing when any user exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`, DemoEmail, string(hash), "Demo").Scan(&userID)
	if err != nil {
		return fmt.Errorf("seed insert user: %w", err)
	}

	cfg := sampleConfig()
	stack, err := json.Marshal(cfg.TechStack)
	if err != nil {
		return fmt.Errorf("seed encode tech stack: %w", err)
	}
	features, err := json.Marshal(cfg.CustomFeatures)
	if err != nil {
		return fmt.Errorf("seed encode features: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO prompt_configs (
			user_id, name, project_name, one_liner, target_user, app_type,
			tech_stack, theme, color_mode, include_sentry, include_fuzzy_search,
			include_toasts, custom_features, custom_db_tables, special_requirements
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, userID, "Habit tracker (sample)", cfg.ProjectName, cfg.OneLiner, cfg.TargetUser,
		cfg.AppType, string(stack), cfg.Theme, cfg.ColorMode, cfg.IncludeSentry,
		cfg.IncludeFuzzySearch, cfg.IncludeToasts, string(features), cfg.CustomDBTables,
		cfg.SpecialRequirements)
	if err != nil {
		return fmt.Errorf("seed insert config: %w", err)
	}

	slog.Info("database seeded with demo user",
		"email", DemoEmail,
		"password", DemoPassword,
	)

	return nil
}

func sampleConfig() models.PromptConfig {
	cfg := models.DefaultPromptConfig()
	cfg.ProjectName = "Habit Tracker"
	cfg.OneLiner = "Build streaks for the habits that matter"
	cfg.TargetUser = "People who want a lightweight daily check-in"
	cfg.AddCustomFeatures([]string{"Daily check-in", "Streak calendar", "Reminder emails"})
	cfg.CustomDBTables = "habits: id, user_id, name, created_at\ncheckins: id, habit_id, day"
	return cfg
}
