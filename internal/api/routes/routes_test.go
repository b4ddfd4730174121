package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"espresso-backend/internal/artifact"
	"espresso-backend/internal/auth"
	"espresso-backend/internal/config"
	apperrors "espresso-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		APIVersion:     "v2",
		ArtifactSource: config.ArtifactSourceFixture,
		StorageBucket:  "headbits-tha.appspot.com",
		JWTSecret:      "test-secret",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

func setupRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	oracle, err := artifact.NewFixtureOracle(cfg.StorageBucket)
	require.NoError(t, err)

	// Only routes that never reach the store are exercised here
	router, err := SetupRoutes(nil, cfg, oracle)
	require.NoError(t, err)
	return router
}

func serve(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthcheck(t *testing.T) {
	router := setupRouter(t, testConfig())

	w := serve(router, http.MethodGet, "/healthcheck", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"OK"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestArtifactsRoute(t *testing.T) {
	router := setupRouter(t, testConfig())

	w := serve(router, http.MethodGet, "/api/v2/espresso/artifacts", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Artifacts map[string]artifact.Folder `json:"artifacts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Artifacts, 20)
	assert.Contains(t, body.Artifacts, "1a3bfc85-0bf6-4ab0-99c0-43c37ec9efd5")
}

func TestPostmanDocument(t *testing.T) {
	router := setupRouter(t, testConfig())

	w := serve(router, http.MethodGet, "/postman.json", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc["swagger"])
	assert.Contains(t, doc["paths"], "/espresso/company")
}

func TestNoRoute(t *testing.T) {
	router := setupRouter(t, testConfig())

	w := serve(router, http.MethodGet, "/api/v1/espresso/companies", "", map[string]string{"X-Request-ID": "r-42"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Endpoint not found", body["error"])
	assert.Equal(t, "r-42", body["request_id"])
}

func TestProtectedWrites(t *testing.T) {
	cfg := testConfig()
	cfg.AuthEnabled = true
	router := setupRouter(t, cfg)

	writes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v2/espresso/company"},
		{http.MethodPost, "/api/v2/espresso/widget"},
		{http.MethodPost, "/api/v2/espresso/branch"},
		{http.MethodPatch, "/api/v2/espresso/branch/b-1"},
	}

	for _, tc := range writes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := serve(router, tc.method, tc.path, `{}`, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	t.Run("valid token reaches the handler", func(t *testing.T) {
		service, err := auth.NewAuthService(cfg.JWTSecret)
		require.NoError(t, err)
		token, err := service.GenerateJWT("deployer", "", time.Minute)
		require.NoError(t, err)

		// An empty body fails validation before the store is touched
		w := serve(router, http.MethodPost, "/api/v2/espresso/company", `{}`, map[string]string{
			"Authorization": "Bearer " + token,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reads stay open", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/v2/espresso/artifacts", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestProtectedWritesNeedSecret(t *testing.T) {
	cfg := testConfig()
	cfg.AuthEnabled = true
	cfg.JWTSecret = ""

	oracle, err := artifact.NewFixtureOracle(cfg.StorageBucket)
	require.NoError(t, err)

	router, err := SetupRoutes(nil, cfg, oracle)
	assert.Nil(t, router)
	assert.ErrorIs(t, err, apperrors.ErrJWTSecretMissing)
}
