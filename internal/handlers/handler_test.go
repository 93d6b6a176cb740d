// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure: in-memory fakes for
// the handler dependencies, and an integration environment backed by real
// PostgreSQL and Valkey. Integration tests are skipped when those services
// are unavailable.
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"promptwizard/internal/database"
	"promptwizard/internal/middleware"
	"promptwizard/internal/models"
	"promptwizard/internal/session"
	"promptwizard/internal/store"
)

// --------------------------------------------------------------------------
// Fakes
// --------------------------------------------------------------------------

// fakeSuggester returns canned suggestion results and records its input.
type fakeSuggester struct {
	suggestions *models.AISuggestions
	questions   *models.AIQuestions
	err         error

	calls       int
	lastIdea    string
	lastAnswers []models.QAItem
	lastMode    string
}

func (f *fakeSuggester) QuickGenerate(_ context.Context, idea string) (*models.AISuggestions, error) {
	f.calls++
	f.lastIdea, f.lastMode = idea, "quick"
	return f.suggestions, f.err
}

func (f *fakeSuggester) DiscoveryQuestions(_ context.Context, idea string) (*models.AIQuestions, error) {
	f.calls++
	f.lastIdea, f.lastMode = idea, "questions"
	return f.questions, f.err
}

func (f *fakeSuggester) GenerateWithContext(_ context.Context, idea string, answers []models.QAItem) (*models.AISuggestions, error) {
	f.calls++
	f.lastIdea, f.lastMode, f.lastAnswers = idea, "generate", answers
	return f.suggestions, f.err
}

// providerStatus is a fixed ProviderStatus.
type providerStatus bool

func (p providerStatus) HasActive() bool { return bool(p) }

// fakeConfigs is an in-memory ConfigRepository.
type fakeConfigs struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*models.SavedConfig
	err  error
}

func newFakeConfigs() *fakeConfigs {
	return &fakeConfigs{rows: make(map[uuid.UUID]*models.SavedConfig)}
}

func (f *fakeConfigs) Save(userID uuid.UUID, name string, cfg models.PromptConfig) (*models.SavedConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	now := time.Now().Add(time.Duration(len(f.rows)) * time.Millisecond)
	row := &models.SavedConfig{
		ID: uuid.New(), UserID: userID, Name: strings.TrimSpace(name), Config: cfg,
		CreatedAt: now, UpdatedAt: now,
	}
	f.rows[row.ID] = row
	return row, nil
}

func (f *fakeConfigs) List(userID uuid.UUID) ([]models.SavedConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []models.SavedConfig{}
	for _, row := range f.rows {
		if row.UserID == userID && !row.IsDeleted {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (f *fakeConfigs) FindByID(userID, id uuid.UUID) (*models.SavedConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeConfigs) SoftDelete(userID, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	row, ok := f.rows[id]
	if !ok || row.UserID != userID || row.IsDeleted {
		return false, nil
	}
	now := time.Now()
	row.IsDeleted = true
	row.DeletedAt = &now
	return true, nil
}

// fakeUsers is an in-memory UserRepository. Passwords are stored in clear.
type fakeUsers struct {
	byEmail map[string]*models.User
	err     error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: make(map[string]*models.User)}
}

func (f *fakeUsers) FindByEmail(email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[strings.ToLower(strings.TrimSpace(email))], nil
}

func (f *fakeUsers) FindByID(id uuid.UUID) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Create(email, password, displayName string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, ok := f.byEmail[email]; ok {
		return nil, store.ErrEmailTaken
	}
	u := &models.User{ID: uuid.New(), Email: email, PasswordHash: password, DisplayName: displayName}
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUsers) CheckPassword(user *models.User, password string) bool {
	return user.PasswordHash == password
}

// fakeSessions records created and destroyed sessions.
type fakeSessions struct {
	created   []*session.Data
	destroyed int
	err       error
}

func (f *fakeSessions) Create(_ context.Context, w http.ResponseWriter, data *session.Data) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, data)
	http.SetCookie(w, &http.Cookie{Name: session.CookieName, Value: "test-session", Path: "/"})
	return "test-session", nil
}

func (f *fakeSessions) Destroy(_ context.Context, _ http.ResponseWriter, _ *http.Request) error {
	f.destroyed++
	return f.err
}

// --------------------------------------------------------------------------
// Request helpers
// --------------------------------------------------------------------------

// jsonRequest builds a request with body encoded as JSON. A string body is
// sent verbatim.
func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeBody decodes a JSON response body into dst.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// assertError checks status and the {"error": msg} body.
func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if w.Code != status {
		t.Errorf("status: got %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	var got errorResponse
	decodeBody(t, w, &got)
	if got.Error != msg {
		t.Errorf("error: got %q, want %q", got.Error, msg)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type: got %q", ct)
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return middleware.WithSession(ctx, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email string) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test User",
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withChiURLParamAndSession adds both chi URL param and session to a request.
func withChiURLParamAndSession(r *http.Request, key, value string, sess *session.Data) *http.Request {
	r = withChiURLParam(r, key, value)
	return r.WithContext(ctxWithSession(r.Context(), sess))
}

// --------------------------------------------------------------------------
// Integration environment
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "promptwizard")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "promptwizard")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		// Clean up test session keys.
		keys, _ := client.Keys(ctx, "session:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds the real dependencies for handler integration tests.
type testEnv struct {
	DB          *sql.DB
	Sessions    *session.Store
	UserStore   *store.UserStore
	ConfigStore *store.ConfigStore
	Auth        *Auth
	Configs     *Configs
}

// newTestEnv creates an integration environment on PostgreSQL and Valkey.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk, false)
	userStore := store.NewUserStore(db)
	configStore := store.NewConfigStore(db)

	return &testEnv{
		DB:          db,
		Sessions:    sessions,
		UserStore:   userStore,
		ConfigStore: configStore,
		Auth:        NewAuth(userStore, sessions),
		Configs:     NewConfigs(configStore),
	}
}

// cleanUser removes a test account by email; its configurations cascade.
func cleanUser(t *testing.T, db *sql.DB, email string) {
	t.Helper()
	db.Exec("DELETE FROM users WHERE email = $1", email)
}
