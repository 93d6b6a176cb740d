// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"promptwizard/internal/catalog"
	"promptwizard/internal/generator"
	"promptwizard/internal/models"
)

// Generate handles POST /api/generate. The body is a PromptConfig; missing
// fields take their defaults. Responds with all six generated documents.
func Generate(w http.ResponseWriter, r *http.Request) {
	cfg, ok := decodeConfig(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, generator.Generate(cfg))
}

// Bundle handles POST /api/generate/bundle and responds with a zip archive
// of the generated documents.
func Bundle(w http.ResponseWriter, r *http.Request) {
	cfg, ok := decodeConfig(w, r)
	if !ok {
		return
	}

	// Buffer so a write failure can still become a clean 500.
	var buf bytes.Buffer
	if err := generator.WriteZip(&buf, cfg); err != nil {
		slog.Error("bundle write failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to build bundle")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.zip"`, generator.BundleDir(cfg)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Catalog handles GET /api/catalog.
func Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.All())
}

// decodeConfig reads a PromptConfig body over the defaults, normalizes and
// validates it. On failure it has already written the response.
func decodeConfig(w http.ResponseWriter, r *http.Request) (models.PromptConfig, bool) {
	cfg := models.DefaultPromptConfig()
	if err := decodeJSON(w, r, &cfg); err != nil {
		if tooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, msgRequestTooLarge)
		} else {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
		}
		return cfg, false
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		writeValidationError(w, err)
		return cfg, false
	}
	return cfg, true
}

// writeValidationError answers 400 with the validation message, or 500 for
// anything that is not a validation error.
func writeValidationError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, vErr.Message)
		return
	}
	slog.Error("unexpected validation error", "error", err)
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}
