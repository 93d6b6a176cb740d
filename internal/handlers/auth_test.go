package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"promptwizard/internal/middleware"
	"promptwizard/internal/models"
	"promptwizard/internal/session"
)

func TestSignUp(t *testing.T) {
	users := newFakeUsers()
	sessions := &fakeSessions{}
	h := NewAuth(users, sessions)

	body := `{"email": " Ada@Example.com ", "password": "correct horse", "displayName": "Ada"}`
	w := httptest.NewRecorder()
	h.SignUp(w, jsonRequest(t, http.MethodPost, "/api/auth/signup", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	var got models.User
	decodeBody(t, w, &got)
	if got.Email != "ada@example.com" || got.DisplayName != "Ada" {
		t.Errorf("user: got %+v", got)
	}
	if strings.Contains(w.Body.String(), "correct horse") {
		t.Error("password leaked in the response")
	}

	if len(sessions.created) != 1 || sessions.created[0].UserID != got.ID {
		t.Errorf("session not created for the new user: %+v", sessions.created)
	}
	if c := w.Result().Cookies(); len(c) == 0 || c[0].Name != session.CookieName {
		t.Error("session cookie not set")
	}
}

func TestSignUpValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing email", `{"password": "password123"}`, "A valid email is required"},
		{"not an email", `{"email": "ada", "password": "password123"}`, "A valid email is required"},
		{"short password", `{"email": "ada@example.com", "password": "short"}`, "Password must be at least 8 characters"},
		{"long password", `{"email": "ada@example.com", "password": "` + strings.Repeat("p", 73) + `"}`, "Password is too long (max 72 bytes)"},
		{"malformed body", `{"email": `, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &fakeSessions{}
			h := NewAuth(newFakeUsers(), sessions)

			w := httptest.NewRecorder()
			h.SignUp(w, jsonRequest(t, http.MethodPost, "/api/auth/signup", tt.body))

			assertError(t, w, http.StatusBadRequest, tt.want)
			if len(sessions.created) != 0 {
				t.Error("session created for a rejected sign-up")
			}
		})
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	users.Create("ada@example.com", "password123", "")
	h := NewAuth(users, &fakeSessions{})

	w := httptest.NewRecorder()
	h.SignUp(w, jsonRequest(t, http.MethodPost, "/api/auth/signup", `{"email": "ADA@example.com", "password": "password456"}`))

	assertError(t, w, http.StatusConflict, "An account with this email already exists")
}

func TestSignUpStoreFailure(t *testing.T) {
	users := newFakeUsers()
	users.err = errors.New("connection refused")
	h := NewAuth(users, &fakeSessions{})

	w := httptest.NewRecorder()
	h.SignUp(w, jsonRequest(t, http.MethodPost, "/api/auth/signup", `{"email": "ada@example.com", "password": "password123"}`))

	assertError(t, w, http.StatusInternalServerError, "Failed to create account")
}

func TestSignIn(t *testing.T) {
	users := newFakeUsers()
	user, _ := users.Create("ada@example.com", "password123", "Ada")

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"valid credentials", `{"email": "ada@example.com", "password": "password123"}`, http.StatusOK, ""},
		{"email case ignored", `{"email": "ADA@example.com", "password": "password123"}`, http.StatusOK, ""},
		{"wrong password", `{"email": "ada@example.com", "password": "nope12345"}`, http.StatusUnauthorized, "Invalid email or password"},
		{"unknown email", `{"email": "bob@example.com", "password": "password123"}`, http.StatusUnauthorized, "Invalid email or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &fakeSessions{}
			h := NewAuth(users, sessions)

			w := httptest.NewRecorder()
			h.SignIn(w, jsonRequest(t, http.MethodPost, "/api/auth/signin", tt.body))

			if tt.wantError != "" {
				assertError(t, w, tt.wantStatus, tt.wantError)
				if len(sessions.created) != 0 {
					t.Error("session created for failed sign-in")
				}
				return
			}

			if w.Code != tt.wantStatus {
				t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
			}
			if len(sessions.created) != 1 || sessions.created[0].UserID != user.ID {
				t.Errorf("session: got %+v", sessions.created)
			}
		})
	}
}

func TestSignInSessionFailure(t *testing.T) {
	users := newFakeUsers()
	users.Create("ada@example.com", "password123", "")
	h := NewAuth(users, &fakeSessions{err: errors.New("valkey down")})

	w := httptest.NewRecorder()
	h.SignIn(w, jsonRequest(t, http.MethodPost, "/api/auth/signin", `{"email": "ada@example.com", "password": "password123"}`))

	assertError(t, w, http.StatusInternalServerError, "An unexpected error occurred")
}

func TestSignOut(t *testing.T) {
	sessions := &fakeSessions{}
	h := NewAuth(newFakeUsers(), sessions)

	w := httptest.NewRecorder()
	h.SignOut(w, httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("status: got %d, want 204", w.Code)
	}
	if sessions.destroyed != 1 {
		t.Error("session not destroyed")
	}
}

func TestMe(t *testing.T) {
	users := newFakeUsers()
	user, _ := users.Create("ada@example.com", "password123", "Ada")
	h := NewAuth(users, &fakeSessions{})

	t.Run("signed in", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Me(w, authed(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), user.ID))

		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d", w.Code)
		}
		var got models.User
		decodeBody(t, w, &got)
		if got.ID != user.ID || got.Email != "ada@example.com" {
			t.Errorf("user: got %+v", got)
		}
	})

	t.Run("account removed", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Me(w, authed(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), uuid.New()))
		assertError(t, w, http.StatusUnauthorized, "Authentication required")
	})
}

// TestAuthFlowIntegration signs up, reuses the session cookie through
// LoadSession, and signs out, against PostgreSQL and Valkey.
func TestAuthFlowIntegration(t *testing.T) {
	env := newTestEnv(t)
	const email = "auth-flow@test.local"
	cleanUser(t, env.DB, email)
	t.Cleanup(func() { cleanUser(t, env.DB, email) })

	w := httptest.NewRecorder()
	env.Auth.SignUp(w, jsonRequest(t, http.MethodPost, "/api/auth/signup", `{"email": "`+email+`", "password": "password123"}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("sign up: status %d, body %s", w.Code, w.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("no session cookie after sign up")
	}

	me := middleware.LoadSession(env.Sessions)(middleware.RequireAuth(http.HandlerFunc(env.Auth.Me)))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	me.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), email) {
		t.Fatalf("me: status %d, body %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	env.Auth.SignOut(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("sign out: status %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	me.ServeHTTP(w, req)
	assertError(t, w, http.StatusUnauthorized, "Authentication required")

	// Wrong password against the real bcrypt hash.
	w = httptest.NewRecorder()
	env.Auth.SignIn(w, jsonRequest(t, http.MethodPost, "/api/auth/signin", `{"email": "`+email+`", "password": "wrong-password"}`))
	assertError(t, w, http.StatusUnauthorized, "Invalid email or password")
}
