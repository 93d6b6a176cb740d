// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedConfig is a named PromptConfig snapshot owned by one user. Deleted
// rows stay retrievable by ID but are excluded from listings.
type SavedConfig struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"userId"`
	Name      string       `json:"name"`
	Config    PromptConfig `json:"config"`
	IsDeleted bool         `json:"isDeleted"`
	DeletedAt *time.Time   `json:"deletedAt,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// OwnedBy reports whether the snapshot belongs to the given user.
func (s *SavedConfig) OwnedBy(userID uuid.UUID) bool {
	return s.UserID == userID
}
