// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"archive/zip"
	"fmt"
	"io"
	"path"

	"promptwizard/internal/models"
	"promptwizard/internal/slug"
)

// BundleFallbackDir names the bundle directory when the project name slugs
// to nothing.
const BundleFallbackDir = "project"

// Artifact is one generated document paired with its display label and the
// path it occupies inside a project (empty for the master prompt).
type Artifact struct {
	Label    string `json:"label"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Artifacts returns every output in display order: the master prompt first,
// then the docs files and the env example.
func Artifacts(cfg models.PromptConfig) []Artifact {
	out := Generate(cfg)
	return []Artifact{
		{Label: "Master Prompt", Filename: "MASTER_PROMPT.md", Content: out.MasterPrompt},
		{Label: "PRD.md", Filename: "docs/PRD.md", Content: out.PRD},
		{Label: "TODO.md", Filename: "docs/TODO.md", Content: out.TODO},
		{Label: "IDEAS.md", Filename: "docs/IDEAS.md", Content: out.IDEAS},
		{Label: "HANDOFF.md", Filename: "docs/HANDOFF.md", Content: out.HANDOFF},
		{Label: ".env.example", Filename: ".env.example", Content: out.EnvExample},
	}
}

// BundleDir is the top-level directory used inside the zip bundle.
func BundleDir(cfg models.PromptConfig) string {
	return slug.GenerateOr(cfg.ProjectName, BundleFallbackDir)
}

// WriteZip writes every artifact for cfg into a zip archive on w, rooted at
// BundleDir(cfg).
func WriteZip(w io.Writer, cfg models.PromptConfig) error {
	dir := BundleDir(cfg)
	zw := zip.NewWriter(w)

	for _, a := range Artifacts(cfg) {
		f, err := zw.Create(path.Join(dir, a.Filename))
		if err != nil {
			return fmt.Errorf("create %s: %w", a.Filename, err)
		}
		if _, err := io.WriteString(f, a.Content); err != nil {
			return fmt.Errorf("write %s: %w", a.Filename, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip: %w", err)
	}
	return nil
}
