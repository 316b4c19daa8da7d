package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkerross/totodo-api/internal/api/middleware"
	"github.com/parkerross/totodo-api/internal/config"
	"github.com/parkerross/totodo-api/internal/mocks"
	"github.com/parkerross/totodo-api/internal/service/auth"
)

// newTestApplication builds an application backed by in-memory stores, so
// router behavior can be exercised without a database.
func newTestApplication(t *testing.T, server config.ServerConfig) *application {
	t.Helper()

	hasher := &mocks.MockPasswordHasher{ShouldSucceed: true}
	app := &application{
		config: &config.Config{Server: server},
		logger: slog.Default(),

		userStore: mocks.NewMockUserStore(),
		taskStore: mocks.NewMockTaskStore(),

		jwtService: &mocks.MockJWTService{
			Token:  "test-token",
			Claims: &auth.Claims{UserID: uuid.New()},
		},
		passwordHasher:   hasher,
		passwordVerifier: hasher,
	}
	if server.MetricsEnabled {
		app.metrics = middleware.NewMetrics()
	}
	return app
}

func request(t *testing.T, router http.Handler, method, target, bearer string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterProtectedRevision(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t, config.ServerConfig{Port: 8080, LogLevel: "info", ProtectTasks: true})
	router := app.setupRouter()

	t.Run("auth endpoints stay public", func(t *testing.T) {
		rec := request(t, router, http.MethodPost, "/api/users/register", "", map[string]any{
			"email":    "ada@example.com",
			"password": "correct horse battery staple",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("task routes require a token", func(t *testing.T) {
		rec := request(t, router, http.MethodGet, "/api/tasks", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("task routes accept a valid token", func(t *testing.T) {
		rec := request(t, router, http.MethodGet, "/api/tasks", "test-token", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("metrics endpoint is absent", func(t *testing.T) {
		rec := request(t, router, http.MethodGet, "/metrics", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouterOpenRevision(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t, config.ServerConfig{
		Port:           8080,
		LogLevel:       "info",
		ProtectTasks:   false,
		MetricsEnabled: true,
	})
	router := app.setupRouter()

	t.Run("task routes are open", func(t *testing.T) {
		rec := request(t, router, http.MethodPost, "/api/tasks", "", map[string]any{
			"task": "buy milk",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = request(t, router, http.MethodGet, "/api/tasks", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("metrics endpoint reports traffic", func(t *testing.T) {
		rec := request(t, router, http.MethodGet, "/metrics", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `requests{route="GET /api/tasks"}`)
	})
}

func TestRouterBannerAndHealth(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t, config.ServerConfig{Port: 8080, LogLevel: "info", ProtectTasks: true})
	router := app.setupRouter()

	rec := request(t, router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ToToDo")

	rec = request(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouterRegisterThenLoginThenTask(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t, config.ServerConfig{Port: 8080, LogLevel: "info", ProtectTasks: true})
	router := app.setupRouter()

	reg := request(t, router, http.MethodPost, "/api/users/register", "", map[string]any{
		"email":     "ada@example.com",
		"firstName": "Ada",
		"password":  "correct horse battery staple",
	})
	require.Equal(t, http.StatusCreated, reg.Code)

	login := request(t, router, http.MethodPost, "/api/users/login", "", map[string]any{
		"email":    "ada@example.com",
		"password": "correct horse battery staple",
	})
	require.Equal(t, http.StatusOK, login.Code)

	var loginResp struct {
		Token string `json:"token"`
		User  struct {
			FirstName string `json:"firstName"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginResp))
	assert.Equal(t, "Ada", loginResp.User.FirstName)
	require.NotEmpty(t, loginResp.Token)

	created := request(t, router, http.MethodPost, "/api/tasks", loginResp.Token, map[string]any{
		"task": "buy milk",
	})
	assert.Equal(t, http.StatusCreated, created.Code)
}
