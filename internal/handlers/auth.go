// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"promptwizard/internal/middleware"
	"promptwizard/internal/models"
	"promptwizard/internal/session"
	"promptwizard/internal/store"
)

// Account field limits.
const (
	minPasswordLen    = 8
	maxPasswordLen    = 72 // bcrypt ignores anything longer
	maxEmailLen       = 254
	maxDisplayNameLen = 100
)

// UserRepository stores accounts. *store.UserStore implements it.
type UserRepository interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	Create(email, password, displayName string) (*models.User, error)
	CheckPassword(user *models.User, password string) bool
}

// SessionManager creates and destroys login sessions. *session.Store
// implements it.
type SessionManager interface {
	Create(ctx context.Context, w http.ResponseWriter, data *session.Data) (string, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// Auth groups the account endpoints.
type Auth struct {
	users    UserRepository
	sessions SessionManager
}

// NewAuth creates a new Auth handler group.
func NewAuth(users UserRepository, sessions SessionManager) *Auth {
	return &Auth{users: users, sessions: sessions}
}

// credentials is the body of the sign-up and sign-in endpoints.
type credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// SignUp handles POST /api/auth/signup: creates the account and signs it in.
func (a *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if msg := validateSignUp(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := a.users.Create(req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "An account with this email already exists")
			return
		}
		slog.Error("sign up failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	if !a.startSession(w, r, user) {
		return
	}
	slog.Info("account created", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, user)
}

// SignIn handles POST /api/auth/signin.
func (a *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := a.users.FindByEmail(req.Email)
	if err != nil {
		slog.Error("sign in lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	// Same answer for an unknown email and a wrong password.
	if user == nil || !a.users.CheckPassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if !a.startSession(w, r, user) {
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// SignOut handles POST /api/auth/signout. Signing out without a session
// is not an error.
func (a *Auth) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/auth/me and returns the signed-in user.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := a.users.FindByID(sess.UserID)
	if err != nil {
		slog.Error("load current user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}
	if user == nil {
		// The account was removed while the session was still alive.
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// startSession creates a session for user. On failure it has already
// written a 500.
func (a *Auth) startSession(w http.ResponseWriter, r *http.Request, user *models.User) bool {
	_, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return false
	}
	return true
}

// validateSignUp checks sign-up input and returns the first error found.
func validateSignUp(req credentials) string {
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return "A valid email is required"
	}
	if len(email) > maxEmailLen {
		return "Email is too long"
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLen {
		return "Password must be at least 8 characters"
	}
	if len(req.Password) > maxPasswordLen {
		return "Password is too long (max 72 bytes)"
	}
	if utf8.RuneCountInString(req.DisplayName) > maxDisplayNameLen {
		return "Display name is too long (max 100 characters)"
	}
	return ""
}
