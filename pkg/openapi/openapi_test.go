package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/floorplan/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Floorplan API", "1.0.0")
	spec.AddServer("/api")
	spec.SetDescription("plans")

	assert.Equal(t, "3.1.0", spec.OpenAPI)
	assert.Equal(t, "Floorplan API", spec.Info.Title)
	assert.Equal(t, "plans", spec.Info.Description)
	require.Len(t, spec.Servers, 1)
	assert.Equal(t, "/api", spec.Servers[0].URL)
	assert.Contains(t, spec.Components.Responses, "BadGateway")
	assert.NotNil(t, spec.Paths)
}

func TestMarshalJSON(t *testing.T) {
	spec := openapi.NewSpec("Floorplan API", "1.0.0")
	spec.AddPaths(map[string]*openapi.PathItem{
		"/plans/{index}/image": {
			Get: &openapi.Operation{
				Parameters: []*openapi.Parameter{openapi.PathParam("index", "integer", "Plan index")},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseBinary("Plan image", "image/*"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
		},
	})

	data, err := openapi.MarshalJSON(spec)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	op := doc["paths"].(map[string]any)["/plans/{index}/image"].(map[string]any)["get"].(map[string]any)
	param := op["parameters"].([]any)[0].(map[string]any)
	assert.Equal(t, "path", param["in"])
	assert.Equal(t, "integer", param["schema"].(map[string]any)["type"])

	notFound := op["responses"].(map[string]any)["404"].(map[string]any)
	assert.Equal(t, "#/components/responses/NotFound", notFound["$ref"])
}

func TestSchemaBounds(t *testing.T) {
	floors := (&openapi.Schema{Type: "integer"}).Between(1, 3)
	require.NotNil(t, floors.Minimum)
	require.NotNil(t, floors.Maximum)
	assert.Equal(t, 1.0, *floors.Minimum)
	assert.Equal(t, 3.0, *floors.Maximum)

	length := (&openapi.Schema{Type: "integer"}).AtLeast(10)
	assert.Equal(t, 10.0, *length.Minimum)
	assert.Nil(t, length.Maximum)

	data, err := json.Marshal(length)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"integer","minimum":10}`, string(data))
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")
	require.NoError(t, openapi.WriteJSON(openapi.NewSpec("Floorplan API", "1.0.0"), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"openapi": "3.1.0"`)
}

func TestServeSpec(t *testing.T) {
	rec := httptest.NewRecorder()
	openapi.ServeSpec([]byte(`{"openapi":"3.1.0"}`))(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"openapi":"3.1.0"}`, rec.Body.String())
}

func TestConfigDefaults(t *testing.T) {
	var cfg openapi.Config
	require.NoError(t, cfg.Finalize(nil))
	assert.Equal(t, "Floorplan API", cfg.Title)

	t.Setenv("TEST_OPENAPI_TITLE", "Plans")
	cfg = openapi.Config{}
	require.NoError(t, cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}))
	assert.Equal(t, "Plans", cfg.Title)
}
