// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptwizard/internal/middleware"
	"promptwizard/internal/models"
)

// ConfigRepository persists saved configurations. Every call is scoped to
// the owning user. *store.ConfigStore implements it.
type ConfigRepository interface {
	Save(userID uuid.UUID, name string, cfg models.PromptConfig) (*models.SavedConfig, error)
	List(userID uuid.UUID) ([]models.SavedConfig, error)
	FindByID(userID, id uuid.UUID) (*models.SavedConfig, error)
	SoftDelete(userID, id uuid.UUID) (bool, error)
}

// Configs groups the saved-configuration endpoints. All of them sit behind
// middleware.RequireAuth.
type Configs struct {
	repo ConfigRepository
}

// NewConfigs creates a new Configs handler group.
func NewConfigs(repo ConfigRepository) *Configs {
	return &Configs{repo: repo}
}

// saveRequest is the body of POST /api/configs.
type saveRequest struct {
	Name   string              `json:"name"`
	Config models.PromptConfig `json:"config"`
}

// List handles GET /api/configs.
func (c *Configs) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	configs, err := c.repo.List(sess.UserID)
	if err != nil {
		slog.Error("list configs failed", "error", err, "user_id", sess.UserID)
		writeError(w, http.StatusInternalServerError, "Failed to load configurations")
		return
	}
	writeJSON(w, http.StatusOK, configs)
}

// Save handles POST /api/configs. A blank name is rejected before anything
// is stored.
func (c *Configs) Save(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	req := saveRequest{Config: models.DefaultPromptConfig()}
	if err := decodeJSON(w, r, &req); err != nil {
		if tooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, msgRequestTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := models.ValidateConfigName(req.Name); err != nil {
		writeValidationError(w, err)
		return
	}
	req.Config.Normalize()
	if err := req.Config.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	saved, err := c.repo.Save(sess.UserID, req.Name, req.Config)
	if err != nil {
		slog.Error("save config failed", "error", err, "user_id", sess.UserID)
		writeError(w, http.StatusInternalServerError, "Failed to save configuration")
		return
	}

	slog.Info("config saved", "id", saved.ID, "user_id", sess.UserID)
	writeJSON(w, http.StatusCreated, saved)
}

// Get handles GET /api/configs/{id}. Soft-deleted configurations are still
// returned; other users' configurations are reported as missing.
func (c *Configs) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, ok := configID(w, r)
	if !ok {
		return
	}

	saved, err := c.repo.FindByID(sess.UserID, id)
	if err != nil {
		slog.Error("find config failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to load configurations")
		return
	}
	if saved == nil {
		writeError(w, http.StatusNotFound, "Configuration not found")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// Delete handles DELETE /api/configs/{id} as a soft delete.
func (c *Configs) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, ok := configID(w, r)
	if !ok {
		return
	}

	deleted, err := c.repo.SoftDelete(sess.UserID, id)
	if err != nil {
		slog.Error("delete config failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete configuration")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Configuration not found")
		return
	}

	slog.Info("config deleted", "id", id, "user_id", sess.UserID)
	w.WriteHeader(http.StatusNoContent)
}

// configID parses the {id} URL parameter. A malformed id is a 404, the same
// as an unknown one.
func configID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Configuration not found")
		return uuid.Nil, false
	}
	return id, true
}
