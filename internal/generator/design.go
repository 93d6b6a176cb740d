// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"

	"promptwizard/internal/catalog"
	"promptwizard/internal/models"
)

const designSystemFormat = `DESIGN SYSTEM
Colors (%s)
--accent: %s          /* Primary accent */
--accent-hover: %s    /* Hover state */
--bg-dark: %s         /* Page background */
--bg-card: %s         /* Cards, panels */
--bg-elevated: %s     /* Modals, dropdowns */
--text-primary: %s    /* Main text */
--text-secondary: %s  /* Labels, placeholders */
--border: %s          /* All borders */
--success: %s
--warning: %s
--danger: %s

UI Rules
	- %s
	- NO system defaults - all UI custom styled
	- NO gradients, glow effects, or emojis
	- Font: Inter | Body: 16px min | Spacing: 8px grid | Border radius: 6px
	- Toasts: #252542 bg + colored left border, top-right, 4s dismiss
	- Modals: #252542 bg, close on Escape + overlay click
	- Checkboxes: %s fill when checked
	- Search: Always fuzzy (Fuse.js), 300ms debounce, highlight matches`

// colorModeText returns the palette heading and the UI rule sentence for a
// color mode. Anything other than the two single-mode values is treated as
// "both".
func colorModeText(m models.ColorMode) (heading, rule string) {
	switch m {
	case models.ColorModeDarkOnly:
		return "Dark Mode ONLY", "Dark mode ONLY - no light mode toggle"
	case models.ColorModeLightOnly:
		return "Light Mode ONLY", "Light mode ONLY - no dark mode toggle"
	default:
		return "Dark Mode Defaults", "Both dark and light mode with toggle"
	}
}

// DescribeDesignSystem renders the DESIGN SYSTEM block for the configured
// theme (resolved through the catalog, so unknown ids use the default) and
// color mode.
func DescribeDesignSystem(cfg models.PromptConfig) string {
	c := catalog.ThemeByID(cfg.Theme).Colors
	heading, rule := colorModeText(cfg.ColorMode)

	return fmt.Sprintf(designSystemFormat,
		heading,
		c.Accent, c.AccentHover,
		c.BgDark, c.BgCard, c.BgElevated,
		c.TextPrimary, c.TextSecondary,
		c.Border,
		c.Success, c.Warning, c.Danger,
		rule,
		c.Accent,
	)
}
