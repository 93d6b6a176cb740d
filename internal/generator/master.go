// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"strings"

	"promptwizard/internal/models"
)

const projectHeaderFormat = `PROJECT
Name: %s
One-liner: %s
Ship by: %s
Target user: %s`

const sessionStart = `SESSION START
Every session, do this FIRST before any coding:
	- Read /docs/PRD.md
	- Read /docs/TODO.md
	- Read /docs/HANDOFF.md
	- Check current branch and last commit
	- Ask: "What are we working on this session?"`

// workingRules covers file layout, naming, database conventions, behavior,
// TODO/IDEAS upkeep and communication style. None of it depends on the
// configuration.
const workingRules = `FILE STRUCTURE
/app                    # Next.js App Router pages
/components             # PascalCase: Button.tsx, DataTable.tsx
/hooks                  # camelCase with use: useAuth.ts
/lib                    # Utilities, Supabase client
/types                  # TypeScript types
/docs                   # PRD.md, TODO.md, IDEAS.md, HANDOFF.md
/scripts                # seed.ts, migrations

NAMING CONVENTIONS
	- Components: PascalCase (UserCard.tsx)
	- Pages/routes: kebab-case (user-settings/page.tsx)
	- Hooks: camelCase with use prefix (useDebounce.ts)
	- DB tables: snake_case plural (user_profiles)
	- DB columns: snake_case (created_at, is_deleted)
	- Env vars: SCREAMING_SNAKE (NEXT_PUBLIC_SUPABASE_URL)
	- Event handlers: handleAction (handleSubmit, handleDelete)
	- Boolean props: is/has/should prefix (isLoading, hasError)

DATABASE PATTERNS
Always include on tables:
id UUID DEFAULT gen_random_uuid() PRIMARY KEY
created_at TIMESTAMPTZ DEFAULT NOW()
updated_at TIMESTAMPTZ DEFAULT NOW()
is_deleted BOOLEAN DEFAULT FALSE
deleted_at TIMESTAMPTZ

	- Soft delete by default - set is_deleted = true, never hard delete
	- All queries filter WHERE is_deleted = FALSE
	- Store all timestamps in UTC

BEHAVIOR RULES
Follow these exactly:

PRD
	- PRD lives at /docs/PRD.md - read it every session
	- NO changes to PRD without my explicit approval
	- If a feature isn't in PRD, don't build it
	- Reference PRD section numbers in commits

HANDOFF
	- HANDOFF.md lives at /docs/HANDOFF.md - update it every session
	- Contains: current work, completed features, tried approaches, next steps
	- Use for context when starting new conversations
	- Format includes: Quick Context, Current Session, Build Status, Tried & Decided, Next Steps

Decisions
	- ASK before major architectural decisions
	- For minor decisions: make reasonable choice, mention it briefly

Blockers
	- If blocked but NOT damaging to app: add TODO comment and continue
	- If blocked AND potentially damaging: STOP and ask me
	- TODO format: // TODO: [description] - [date]

Testing & Commits
	- Run and test code before considering it done
	- Commit only when I request it
	- Commit format: type(scope): description
	- Types: feat, fix, docs, style, refactor, chore

TODO & IDEAS MANAGEMENT
Maintain these files - read at session start, update as we work:

/docs/TODO.md
	- Active tasks and blockers
	- Bugs to fix
	- Technical debt
	- Mark items [DONE] when complete, move to bottom

# TODO.md format:
## Active
- [ ] Task description - PRD Section X
- [ ] Bug: description

## Blocked
- [ ] Task - BLOCKED: reason

## Done
- [x] Completed task - 2024-01-15

/docs/IDEAS.md
	- Future features (not in current PRD)
	- Nice-to-haves
	- User requests
	- Add ideas as they come up during development
	- DO NOT build these without approval - just log them

# IDEAS.md format:
## Future Features
- Idea description - added 2024-01-15
- Another idea - added 2024-01-16

## User Requests
- Request from [source] - added date

COMMUNICATION STYLE
Be concise:
	- Bullet points for changes and status
	- No over-explaining - I'll ask if I need more detail
	- Don't repeat what I already know
	- When done with a task, summarize: what changed, what files, any TODOs

Format for updates:
Done:
- Created UserCard component
- Added to /components/UserCard.tsx
- Integrated with DataTable

TODO added:
- Add loading skeleton (non-blocking)

Ready to test: http://localhost:3000/users`

const firstDayChecklistHead = `FIRST DAY CHECKLIST
	- Create /docs/PRD.md with full PRD
	- Create /docs/TODO.md (empty Active section)
	- Create /docs/IDEAS.md (empty)
	- Create /docs/HANDOFF.md (with template)
	- Set up Next.js project with App Router
	- Configure Supabase client
	- Set up Tailwind with dark mode colors
	- Add favicon (32x32 + 180x180 Apple)
	- Add meta tags (title, description, OG image)`

const firstDaySentry = "\t- Set up Sentry"

const firstDayChecklistTail = `	- Create .env.example with all required vars
	- Set up GitHub Actions keep-alive for Supabase
	- Create initial database tables`

const commonPatterns = `COMMON PATTERNS
Loading states
- Use skeleton loaders, not spinners
- Show immediately, no delay

Empty states
- Helpful message (not just "No data")
- Primary action button
- Example: "No records yet. + Add your first record"

Error handling
- Show toast for user errors
- Log to Sentry for system errors
- Always provide retry option or next step

Tables
- Default sort: most recent first
- Fuzzy search across all text columns
- URL params for filters (shareable)
- CSV export button top-right`

// MasterPrompt assembles the long-form instruction document handed to the
// coding assistant at the start of every session.
func MasterPrompt(cfg models.PromptConfig) string {
	header := fmt.Sprintf(projectHeaderFormat,
		orPlaceholder(cfg.ProjectName, PlaceholderProjectName),
		orPlaceholder(cfg.OneLiner, PlaceholderOneLiner),
		orPlaceholder(cfg.ShipBy, PlaceholderShipBy),
		orPlaceholder(cfg.TargetUser, PlaceholderTargetUser),
	)

	checklist := firstDayChecklistHead
	if cfg.IncludeSentry {
		checklist += "\n" + firstDaySentry
	}
	checklist += "\n" + firstDayChecklistTail

	sections := []string{
		header,
		sessionStart,
		DescribeTechStack(cfg),
		DescribeDesignSystem(cfg),
		workingRules,
		DescribeEnvVars(cfg),
		checklist,
		commonPatterns,
		projectDetails(cfg),
	}
	return strings.Join(sections, "\n\n")
}

// projectDetails renders the PROJECT-SPECIFIC DETAILS section that closes the
// master prompt.
func projectDetails(cfg models.PromptConfig) string {
	features := cfg.CustomFeatures
	if len(features) == 0 {
		features = PlaceholderFeatures
	}

	return "PROJECT-SPECIFIC DETAILS\n" +
		"Core features (MVP)\n" + bulletList(features) +
		"\n\nDatabase tables\n" + orPlaceholder(cfg.CustomDBTables, PlaceholderDBTables) +
		"\n\nSpecial requirements\n" + orPlaceholder(cfg.SpecialRequirements, PlaceholderRequirements)
}
