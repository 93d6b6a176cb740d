// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"promptwizard/internal/models"
)

// ConfigStore handles saved wizard configurations. Rows are never removed;
// deletion sets is_deleted and deleted_at.
type ConfigStore struct {
	db *sql.DB
}

// NewConfigStore creates a new ConfigStore with the given database connection.
func NewConfigStore(db *sql.DB) *ConfigStore {
	return &ConfigStore{db: db}
}

const configColumns = `
	id, user_id, name, project_name, one_liner, ship_by, target_user, app_type,
	tech_stack, theme, color_mode, include_sentry, include_fuzzy_search,
	include_toasts, custom_features, custom_db_tables, special_requirements,
	is_deleted, deleted_at, created_at, updated_at`

// Save inserts a new snapshot of cfg under name for the given user. The name
// is validated by the caller.
func (s *ConfigStore) Save(userID uuid.UUID, name string, cfg models.PromptConfig) (*models.SavedConfig, error) {
	stack, err := json.Marshal(cfg.TechStack)
	if err != nil {
		return nil, fmt.Errorf("encode tech stack: %w", err)
	}
	features := cfg.CustomFeatures
	if features == nil {
		features = []string{}
	}
	featuresJSON, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("encode custom features: %w", err)
	}

	var shipBy any
	if cfg.ShipBy != "" {
		shipBy = cfg.ShipBy
	}

	sc, err := scanConfig(s.db.QueryRow(`
		INSERT INTO prompt_configs (
			user_id, name, project_name, one_liner, ship_by, target_user, app_type,
			tech_stack, theme, color_mode, include_sentry, include_fuzzy_search,
			include_toasts, custom_features, custom_db_tables, special_requirements
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+configColumns,
		userID, strings.TrimSpace(name), cfg.ProjectName, cfg.OneLiner, shipBy, cfg.TargetUser,
		string(cfg.AppType), string(stack), cfg.Theme, string(cfg.ColorMode),
		cfg.IncludeSentry, cfg.IncludeFuzzySearch, cfg.IncludeToasts,
		string(featuresJSON), cfg.CustomDBTables, cfg.SpecialRequirements,
	))
	if err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}
	return sc, nil
}

// List returns the user's non-deleted configurations, most recently updated
// first. Missing columns are back-filled with the wizard defaults.
func (s *ConfigStore) List(userID uuid.UUID) ([]models.SavedConfig, error) {
	rows, err := s.db.Query(`
		SELECT `+configColumns+`
		FROM prompt_configs
		WHERE user_id = $1 AND is_deleted = FALSE
		ORDER BY updated_at DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}
	defer rows.Close()

	items := []models.SavedConfig{}
	for rows.Next() {
		sc, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		items = append(items, *sc)
	}
	return items, rows.Err()
}

// FindByID retrieves one configuration owned by userID, including a
// soft-deleted one. Returns nil if it does not exist or belongs to someone
// else.
func (s *ConfigStore) FindByID(userID, id uuid.UUID) (*models.SavedConfig, error) {
	sc, err := scanConfig(s.db.QueryRow(`
		SELECT `+configColumns+`
		FROM prompt_configs
		WHERE id = $1 AND user_id = $2
	`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find config by id: %w", err)
	}
	return sc, nil
}

// SoftDelete marks a configuration as deleted. It reports false when no
// live row with that id belongs to userID. Deleting twice is a no-op that
// keeps the first deletion timestamp.
func (s *ConfigStore) SoftDelete(userID, id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE prompt_configs
		SET is_deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("soft delete config: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("soft delete config: %w", err)
	}
	return n > 0, nil
}

// scanConfig reads one prompt_configs row. Every content column is nullable;
// NULLs keep the value from models.DefaultPromptConfig.
func scanConfig(row interface{ Scan(...any) error }) (*models.SavedConfig, error) {
	var (
		sc                                              models.SavedConfig
		projectName, oneLiner, targetUser, appType      sql.NullString
		theme, colorMode, dbTables, requirements        sql.NullString
		shipBy, deletedAt                               sql.NullTime
		includeSentry, includeFuzzySearch, includeToast sql.NullBool
		stackJSON, featuresJSON                         []byte
	)
	err := row.Scan(
		&sc.ID, &sc.UserID, &sc.Name, &projectName, &oneLiner, &shipBy, &targetUser, &appType,
		&stackJSON, &theme, &colorMode, &includeSentry, &includeFuzzySearch,
		&includeToast, &featuresJSON, &dbTables, &requirements,
		&sc.IsDeleted, &deletedAt, &sc.CreatedAt, &sc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cfg := models.DefaultPromptConfig()
	cfg.ProjectName = projectName.String
	cfg.OneLiner = oneLiner.String
	cfg.TargetUser = targetUser.String
	cfg.CustomDBTables = dbTables.String
	cfg.SpecialRequirements = requirements.String
	if shipBy.Valid {
		cfg.ShipBy = shipBy.Time.Format(models.ShipByLayout)
	}
	if appType.Valid && appType.String != "" {
		cfg.AppType = models.AppType(appType.String)
	}
	if theme.Valid && theme.String != "" {
		cfg.Theme = theme.String
	}
	if colorMode.Valid && colorMode.String != "" {
		cfg.ColorMode = models.ColorMode(colorMode.String)
	}
	if includeSentry.Valid {
		cfg.IncludeSentry = includeSentry.Bool
	}
	if includeFuzzySearch.Valid {
		cfg.IncludeFuzzySearch = includeFuzzySearch.Bool
	}
	if includeToast.Valid {
		cfg.IncludeToasts = includeToast.Bool
	}
	if len(stackJSON) > 0 {
		var stack models.TechStack
		if err := json.Unmarshal(stackJSON, &stack); err != nil {
			return nil, fmt.Errorf("decode tech stack: %w", err)
		}
		stack.FillFrom(cfg.TechStack)
		cfg.TechStack = stack
	}
	if len(featuresJSON) > 0 {
		var features []string
		if err := json.Unmarshal(featuresJSON, &features); err != nil {
			return nil, fmt.Errorf("decode custom features: %w", err)
		}
		if features != nil {
			cfg.CustomFeatures = features
		}
	}
	sc.Config = cfg

	if deletedAt.Valid {
		t := deletedAt.Time.UTC()
		sc.DeletedAt = &t
	}
	sc.CreatedAt = sc.CreatedAt.UTC()
	sc.UpdatedAt = sc.UpdatedAt.UTC()
	return &sc, nil
}

