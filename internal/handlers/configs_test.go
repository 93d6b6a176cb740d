package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"promptwizard/internal/models"
)

// authed attaches a session for userID to the request.
func authed(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(ctxWithSession(r.Context(), testSession(userID, "owner@example.com")))
}

func TestConfigsSaveAndList(t *testing.T) {
	repo := newFakeConfigs()
	h := NewConfigs(repo)
	userID := uuid.New()

	for _, name := range []string{"First", "Second"} {
		body := map[string]any{"name": "  " + name + "  ", "config": map[string]any{"projectName": name}}
		w := httptest.NewRecorder()
		h.Save(w, authed(jsonRequest(t, http.MethodPost, "/api/configs", body), userID))

		if w.Code != http.StatusCreated {
			t.Fatalf("save %s: status %d, body %s", name, w.Code, w.Body.String())
		}
		var saved models.SavedConfig
		decodeBody(t, w, &saved)
		if saved.Name != name || saved.UserID != userID {
			t.Errorf("saved: got %+v", saved)
		}
		// Missing fields were filled with defaults.
		if saved.Config.AppType != models.AppTypeSaaS || !saved.Config.IncludeToasts {
			t.Errorf("defaults not applied: %+v", saved.Config)
		}
	}

	w := httptest.NewRecorder()
	h.List(w, authed(httptest.NewRequest(http.MethodGet, "/api/configs", nil), userID))

	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var list []models.SavedConfig
	decodeBody(t, w, &list)
	if len(list) != 2 || list[0].Name != "Second" || list[1].Name != "First" {
		t.Errorf("list order: got %+v", list)
	}
}

func TestConfigsListEmptyIsArray(t *testing.T) {
	h := NewConfigs(newFakeConfigs())

	w := httptest.NewRecorder()
	h.List(w, authed(httptest.NewRequest(http.MethodGet, "/api/configs", nil), uuid.New()))

	if got := w.Body.String(); got != "[]\n" {
		t.Errorf("body: got %q, want []", got)
	}
}

func TestConfigsSaveRejectsBlankName(t *testing.T) {
	repo := newFakeConfigs()
	h := NewConfigs(repo)

	w := httptest.NewRecorder()
	h.Save(w, authed(jsonRequest(t, http.MethodPost, "/api/configs", `{"name": "   ", "config": {}}`), uuid.New()))

	assertError(t, w, http.StatusBadRequest, "Please enter a name")
	if len(repo.rows) != 0 {
		t.Error("a config was stored despite the blank name")
	}
}

func TestConfigsSaveRejectsInvalidConfig(t *testing.T) {
	h := NewConfigs(newFakeConfigs())

	w := httptest.NewRecorder()
	h.Save(w, authed(jsonRequest(t, http.MethodPost, "/api/configs", `{"name": "x", "config": {"shipBy": "31/12/2026"}}`), uuid.New()))

	assertError(t, w, http.StatusBadRequest, "Ship date must be a calendar date (YYYY-MM-DD).")
}

func TestConfigsStoreFailures(t *testing.T) {
	repo := newFakeConfigs()
	repo.err = errors.New("connection refused")
	h := NewConfigs(repo)
	userID := uuid.New()
	id := uuid.New().String()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		req     *http.Request
		want    string
	}{
		{"save", h.Save, authed(jsonRequest(t, http.MethodPost, "/api/configs", `{"name": "x", "config": {}}`), userID), "Failed to save configuration"},
		{"list", h.List, authed(httptest.NewRequest(http.MethodGet, "/api/configs", nil), userID), "Failed to load configurations"},
		{"get", h.Get, withChiURLParamAndSession(httptest.NewRequest(http.MethodGet, "/", nil), "id", id, testSession(userID, "a@b.c")), "Failed to load configurations"},
		{"delete", h.Delete, withChiURLParamAndSession(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id, testSession(userID, "a@b.c")), "Failed to delete configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler(w, tt.req)
			assertError(t, w, http.StatusInternalServerError, tt.want)
		})
	}
}

func TestConfigsGetAndDelete(t *testing.T) {
	repo := newFakeConfigs()
	h := NewConfigs(repo)
	owner := uuid.New()
	other := uuid.New()

	saved, _ := repo.Save(owner, "Mine", models.DefaultPromptConfig())
	id := saved.ID.String()

	t.Run("other user sees nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Get(w, withChiURLParamAndSession(httptest.NewRequest(http.MethodGet, "/", nil), "id", id, testSession(other, "x@y.z")))
		assertError(t, w, http.StatusNotFound, "Configuration not found")

		w = httptest.NewRecorder()
		h.Delete(w, withChiURLParamAndSession(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id, testSession(other, "x@y.z")))
		assertError(t, w, http.StatusNotFound, "Configuration not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Get(w, withChiURLParamAndSession(httptest.NewRequest(http.MethodGet, "/", nil), "id", "not-a-uuid", testSession(owner, "a@b.c")))
		assertError(t, w, http.StatusNotFound, "Configuration not found")
	})

	t.Run("owner deletes", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Delete(w, withChiURLParamAndSession(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id, testSession(owner, "a@b.c")))
		if w.Code != http.StatusNoContent {
			t.Fatalf("delete: status %d, body %s", w.Code, w.Body.String())
		}

		// A second delete finds nothing left to delete.
		w = httptest.NewRecorder()
		h.Delete(w, withChiURLParamAndSession(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id, testSession(owner, "a@b.c")))
		assertError(t, w, http.StatusNotFound, "Configuration not found")
	})

	t.Run("deleted row still retrievable but not listed", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Get(w, withChiURLParamAndSession(httptest.NewRequest(http.MethodGet, "/", nil), "id", id, testSession(owner, "a@b.c")))
		if w.Code != http.StatusOK {
			t.Fatalf("get: status %d", w.Code)
		}
		var got models.SavedConfig
		decodeBody(t, w, &got)
		if !got.IsDeleted || got.DeletedAt == nil {
			t.Errorf("deletion flags not set: %+v", got)
		}

		w = httptest.NewRecorder()
		h.List(w, authed(httptest.NewRequest(http.MethodGet, "/api/configs", nil), owner))
		var list []models.SavedConfig
		decodeBody(t, w, &list)
		if len(list) != 0 {
			t.Errorf("deleted config listed: %+v", list)
		}
	})
}

// TestConfigsIntegration runs the save/list/delete cycle against PostgreSQL.
func TestConfigsIntegration(t *testing.T) {
	env := newTestEnv(t)
	const email = "configs-handler@test.local"
	cleanUser(t, env.DB, email)
	t.Cleanup(func() { cleanUser(t, env.DB, email) })

	user, err := env.UserStore.Create(email, "password123", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	w := httptest.NewRecorder()
	body := `{"name": "Crypto tracker", "config": {"projectName": "CoinLens", "shipBy": "2026-12-01", "customFeatures": ["Alerts"]}}`
	env.Configs.Save(w, authed(jsonRequest(t, http.MethodPost, "/api/configs", body), user.ID))
	if w.Code != http.StatusCreated {
		t.Fatalf("save: status %d, body %s", w.Code, w.Body.String())
	}
	var saved models.SavedConfig
	decodeBody(t, w, &saved)

	w = httptest.NewRecorder()
	env.Configs.List(w, authed(httptest.NewRequest(http.MethodGet, "/api/configs", nil), user.ID))
	var list []models.SavedConfig
	decodeBody(t, w, &list)
	if len(list) != 1 || list[0].Config.ShipBy != "2026-12-01" || list[0].Config.CustomFeatures[0] != "Alerts" {
		t.Fatalf("list: got %+v", list)
	}

	w = httptest.NewRecorder()
	env.Configs.Delete(w, withChiURLParamAndSession(httptest.NewRequest(http.MethodDelete, "/", nil), "id", saved.ID.String(), testSession(user.ID, email)))
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", w.Code)
	}

	w = httptest.NewRecorder()
	env.Configs.List(w, authed(httptest.NewRequest(http.MethodGet, "/api/configs", nil), user.ID))
	decodeBody(t, w, &list)
	if len(list) != 0 {
		t.Errorf("deleted config still listed: %+v", list)
	}
}
