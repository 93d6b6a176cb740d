// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"promptwizard/internal/catalog"
	"promptwizard/internal/generator"
	"promptwizard/internal/markdown"
	"promptwizard/internal/models"
	"promptwizard/internal/render"
)

// Preview serves the server-rendered wizard page: a form over every
// PromptConfig field and the six generated documents beside it.
type Preview struct {
	renderer *render.Renderer
}

// NewPreview creates a new Preview handler group.
func NewPreview(renderer *render.Renderer) *Preview {
	return &Preview{renderer: renderer}
}

// selectField is one drop-down of the form.
type selectField struct {
	Name    string
	Label   string
	Options catalog.Options
	Value   string
}

// Show handles GET / with the default configuration.
func (p *Preview) Show(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusOK, models.DefaultPromptConfig(), "")
}

// Submit handles POST /. The page script posts here on every edit and asks
// for the outputs fragment only.
func (p *Preview) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cfg := configFromForm(r)
	if err := cfg.Validate(); err != nil {
		p.render(w, r, http.StatusBadRequest, cfg, err.Error())
		return
	}
	p.render(w, r, http.StatusOK, cfg, "")
}

// Bundle handles POST /bundle: the form's download button.
func (p *Preview) Bundle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cfg := configFromForm(r)
	if err := cfg.Validate(); err != nil {
		p.render(w, r, http.StatusBadRequest, cfg, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := generator.WriteZip(&buf, cfg); err != nil {
		slog.Error("bundle write failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.zip"`, generator.BundleDir(cfg)))
	w.Write(buf.Bytes())
}

// render generates the documents for cfg and renders the page. An invalid
// configuration is shown back with its error and no outputs.
func (p *Preview) render(w http.ResponseWriter, r *http.Request, status int, cfg models.PromptConfig, errMsg string) {
	data := map[string]any{
		"Config":    cfg,
		"Selects":   selectFields(cfg),
		"ThemeName": catalog.ThemeByID(cfg.Theme).Name,
	}

	if errMsg != "" {
		data["Error"] = errMsg
	} else {
		out := generator.Generate(cfg)
		data["Outputs"] = out
		data["PRDHTML"] = markdownHTML(out.PRD)
		data["HandoffHTML"] = markdownHTML(out.HANDOFF)
	}

	p.renderer.Page(w, r, status, "preview", &render.PageData{
		Title: "Wizard",
		Data:  data,
	})
}

// markdownHTML renders a generated document; on failure the source is shown
// escaped instead.
func markdownHTML(source string) template.HTML {
	html, err := markdown.ToHTML(source)
	if err != nil {
		slog.Error("markdown render failed", "error", err)
		return template.HTML("<pre>" + template.HTMLEscapeString(source) + "</pre>")
	}
	return template.HTML(html)
}

// selectFields lists the drop-downs of the form with cfg's current values.
func selectFields(cfg models.PromptConfig) []selectField {
	themes := make(catalog.Options, 0, len(catalog.Themes()))
	for _, t := range catalog.Themes() {
		themes = append(themes, catalog.Option{Value: t.ID, Label: t.Name})
	}

	ts := cfg.TechStack
	return []selectField{
		{"appType", "App type", catalog.AppTypeOptions, string(cfg.AppType)},
		{"techStack.frontend", "Frontend", catalog.FrontendOptions, string(ts.Frontend)},
		{"techStack.database", "Database", catalog.DatabaseOptions, string(ts.Database)},
		{"techStack.auth", "Auth", catalog.AuthOptions, string(ts.Auth)},
		{"techStack.hosting", "Hosting", catalog.HostingOptions, string(ts.Hosting)},
		{"techStack.backendAutomation", "Backend automation", catalog.BackendAutomationOptions, string(ts.BackendAutomation)},
		{"techStack.ai", "AI", catalog.AIOptions, string(ts.AI)},
		{"techStack.marketing", "Marketing", catalog.MarketingOptions, string(ts.Marketing)},
		{"theme", "Theme", themes, cfg.Theme},
		{"colorMode", "Color mode", catalog.ColorModeOptions, string(cfg.ColorMode)},
	}
}

// configFromForm builds a PromptConfig from the preview form. Fields not
// present in the form keep their defaults.
func configFromForm(r *http.Request) models.PromptConfig {
	cfg := models.DefaultPromptConfig()

	cfg.ProjectName = strings.TrimSpace(r.PostFormValue("projectName"))
	cfg.OneLiner = strings.TrimSpace(r.PostFormValue("oneLiner"))
	cfg.ShipBy = strings.TrimSpace(r.PostFormValue("shipBy"))
	cfg.TargetUser = strings.TrimSpace(r.PostFormValue("targetUser"))

	if v := r.PostFormValue("appType"); v != "" {
		cfg.AppType = models.AppType(v)
	}
	ts := &cfg.TechStack
	if v := r.PostFormValue("techStack.frontend"); v != "" {
		ts.Frontend = models.Frontend(v)
	}
	if v := r.PostFormValue("techStack.database"); v != "" {
		ts.Database = models.Database(v)
	}
	if v := r.PostFormValue("techStack.auth"); v != "" {
		ts.Auth = models.Auth(v)
	}
	if v := r.PostFormValue("techStack.hosting"); v != "" {
		ts.Hosting = models.Hosting(v)
	}
	if v := r.PostFormValue("techStack.backendAutomation"); v != "" {
		ts.BackendAutomation = models.BackendAutomation(v)
	}
	if v := r.PostFormValue("techStack.ai"); v != "" {
		ts.AI = models.AIProvider(v)
	}
	if v := r.PostFormValue("techStack.marketing"); v != "" {
		ts.Marketing = models.Marketing(v)
	}
	if v := r.PostFormValue("theme"); v != "" {
		cfg.Theme = v
	}
	if v := r.PostFormValue("colorMode"); v != "" {
		cfg.ColorMode = models.ColorMode(v)
	}

	cfg.IncludeSentry = r.PostFormValue("includeSentry") == "on"
	cfg.IncludeFuzzySearch = r.PostFormValue("includeFuzzySearch") == "on"
	cfg.IncludeToasts = r.PostFormValue("includeToasts") == "on"

	for _, line := range strings.Split(r.PostFormValue("customFeatures"), "\n") {
		cfg.AddCustomFeature(line)
	}
	cfg.CustomDBTables = strings.TrimSpace(r.PostFormValue("customDbTables"))
	cfg.SpecialRequirements = strings.TrimSpace(r.PostFormValue("specialRequirements"))

	return cfg
}
