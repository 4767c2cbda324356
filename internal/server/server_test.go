package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/cinescene/internal/config"
	"github.com/agenthands/cinescene/internal/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Defaults()
	cfg.NLP.DisableNER = true
	srv, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestParseScene(t *testing.T) {
	r := newTestServer(t).SetupRouter()

	w := do(t, r, http.MethodPost, "/v1/scenes", ParseSceneRequest{Prompt: `Alice: "I can't believe it!"`})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ParseSceneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "local", resp.Tier)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, resp.RequestID, w.Header().Get(requestIDHeader))
	require.Len(t, resp.Scene.Dialogue, 1)
	assert.Equal(t, "Alice", resp.Scene.Dialogue[0].Character)
}

func TestParseSceneKeepsRequestID(t *testing.T) {
	r := newTestServer(t).SetupRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/scenes", bytes.NewBufferString(`{"prompt":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, "job-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "job-42", w.Header().Get(requestIDHeader))
}

func TestParseSceneBadJSON(t *testing.T) {
	r := newTestServer(t).SetupRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/scenes", bytes.NewBufferString(`{"prompt":`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseScript(t *testing.T) {
	r := newTestServer(t).SetupRouter()

	w := do(t, r, http.MethodPost, "/v1/scripts", ParseScriptRequest{Script: "INT. KITCHEN - NIGHT\n\nEXT. PARK - DAY"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Scenes      []core.Result `json:"scenes"`
		TotalScenes int           `json:"total_scenes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalScenes)
	assert.Equal(t, "KITCHEN", resp.Scenes[0].Scene.Environment)
	assert.Equal(t, "PARK", resp.Scenes[1].Scene.Environment)
}

func TestParseScriptRequiresScript(t *testing.T) {
	r := newTestServer(t).SetupRouter()

	w := do(t, r, http.MethodPost, "/v1/scripts", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	r := newTestServer(t).SetupRouter()

	w := do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "local", resp["mode"])
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestServer(t).SetupRouter()
	do(t, r, http.MethodPost, "/v1/scenes", ParseSceneRequest{Prompt: "hello"})

	w := do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `cinescene_scenes_total{tier="local"} 1`)
}
