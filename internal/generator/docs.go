// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import "promptwizard/internal/models"

// PRDTemplate returns the /docs/PRD.md skeleton. Section 7 embeds the ENV
// VARS block for the configured stack.
func PRDTemplate(cfg models.PromptConfig) string {
	name := orPlaceholder(cfg.ProjectName, PlaceholderDocName)

	return `# ` + name + ` - Product Requirements Document

## 1. Overview

**Project Name:** ` + name + `
**One-liner:** ` + orPlaceholder(cfg.OneLiner, PlaceholderOneLiner) + `
**Target User:** ` + orPlaceholder(cfg.TargetUser, PlaceholderTargetUser) + `
**Ship by:** ` + orPlaceholder(cfg.ShipBy, PlaceholderShipBy) + `

## 2. Problem Statement

[Describe the problem this app solves]

## 3. Core Features (MVP)

### 3.1 Feature 1
[Description]

### 3.2 Feature 2
[Description]

### 3.3 Feature 3
[Description]

## 4. Database Schema

` + fence + `sql
-- Example table
CREATE TABLE example_table (
  id UUID DEFAULT gen_random_uuid() PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  created_at TIMESTAMPTZ DEFAULT NOW(),
  updated_at TIMESTAMPTZ DEFAULT NOW(),
  is_deleted BOOLEAN DEFAULT FALSE,
  deleted_at TIMESTAMPTZ
);
` + fence + `

## 5. UI/UX Specifications

### 5.1 Layout
[Describe main layout]

### 5.2 Key Screens
- Home
- [Screen 2]
- [Screen 3]

## 6. User Flows

### 6.1 Primary Flow
1. User lands on homepage
2. [Step 2]
3. [Step 3]

## 7. Environment Variables

` + fence + `bash
` + DescribeEnvVars(cfg) + `
` + fence + `

## 8. File Structure

` + fence + `
/app
/components
/hooks
/lib
/types
/docs
` + fence + `

## 9. Non-Functional Requirements

- Performance: [requirements]
- Accessibility: [requirements]
- Browser Support: [requirements]

## 10. Out of Scope (MVP)

- [Feature to skip]
- [Another feature to skip]

---

*Last updated: [DATE]*`
}

// TODOTemplate returns the static /docs/TODO.md skeleton.
func TODOTemplate() string {
	return `# TODO

## Active
- [ ] Set up project structure
- [ ] Create database schema
- [ ] Build core UI components
- [ ] Implement main feature

## Blocked
(none)

## Done
- [x] Initial project setup - [DATE]`
}

// IDEASTemplate returns the static /docs/IDEAS.md skeleton.
func IDEASTemplate() string {
	return `# IDEAS

## Future Features
- [Future idea] - added [DATE]

## User Requests
(none yet)

## Nice-to-Haves
- [Nice to have] - added [DATE]`
}

// HANDOFFTemplate returns the /docs/HANDOFF.md session log skeleton.
func HANDOFFTemplate(cfg models.PromptConfig) string {
	name := orPlaceholder(cfg.ProjectName, PlaceholderDocName)

	return `# HANDOFF - ` + name + `

> This document is the living log of the build. Update it every session. Use it to hand off context between Claude conversations.

---

## Quick Context
**What is this?** ` + orPlaceholder(cfg.OneLiner, PlaceholderHandoffLine) + `
**Tech Stack:** ` + stackSummary(cfg.TechStack) + `
**Repo:** [repo-name]
**Branch:** [current-branch]

---

## Current Session
**Date:** [DATE]
**Focus:** [What you're working on]

### Working On Now
- [Current task]

### Completed This Session
- [x] [Completed item]

---

## Build Status
**Overall Progress:** [X]% ([phase])

### Completed Features
- [Feature 1]

### In Progress
- [Feature being built]

### Not Started
- [Feature to build]

---

## Tried & Decided

### Decisions Made
| Decision | Reasoning | Date |
|----------|-----------|------|
| [Decision] | [Why] | [Date] |

### Approaches Tried
- [Approach and outcome]

### What Didn't Work
- [Failed approach and why]

---

## Next Steps
1. [Next task]
2. [Following task]
3. [Future task]

---

## New Conversation Handoff

When starting a new Claude session, do this:

1. **Read these files first:**
   ` + fence + `
   /docs/PRD.md      # Full requirements
   /docs/TODO.md     # Current tasks
   /docs/HANDOFF.md  # This file - build context
   ` + fence + `

2. **Check git status:**
   ` + fence + `bash
   git status
   git log --oneline -5
   ` + fence + `

3. **Resume from "Working On Now" section above**

4. **Ask:** "What should we focus on this session?"

---

## Environment Setup

For local development:
` + fence + `bash
# Install dependencies
npm install

# Set up environment variables
cp .env.example .env.local
# Fill in your keys

# Run dev server
npm run dev
` + fence + `

---

## Known Issues
(none yet)

---

## Useful Commands
` + fence + `bash
# Development
npm run dev          # Start dev server
npm run build        # Production build
npm run lint         # Run linter
` + fence + `

---

*Last updated: [DATE] - Session [N]*`
}
