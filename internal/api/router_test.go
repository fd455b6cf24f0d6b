package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/borhan98/UniFood-Server/internal/db"
	"github.com/borhan98/UniFood-Server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// newTestServer wires the real route table against an in-memory store,
// with caching disabled
func newTestServer(t *testing.T) (*gin.Engine, *db.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := db.NewMemory()
	RegisterRoutes(r, store, nil, testSecret)
	return r, store
}

// doJSON performs a request with an optional JSON body and optional bearer
// token, returning the recorded response
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// tokenFor signs a test token for an email
func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(email, "", testSecret)
	require.NoError(t, err)
	return token
}

// decodeBody unmarshals a recorded JSON response into a generic map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

// decodeList unmarshals a recorded JSON array response
func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}
