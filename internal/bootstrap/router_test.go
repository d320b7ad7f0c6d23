package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-labs/strata-backend/internal/projects/domain"
)

type fakeStore struct{}

func (f *fakeStore) Exists(ctx context.Context, userID, websiteURL string) (bool, error) {
	return false, nil
}

func (f *fakeStore) Insert(ctx context.Context, p *domain.Project) error { return nil }

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return BuildRouter(RouterDeps{
		ServiceName: "test-service",
		Version:     "1.0.0",
		Store:       &fakeStore{},
	})
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/projects", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	r := newTestRouter()

	body := `{"websiteUrl":"https://a.com","scrapedData":{"url":"https://a.com","title":"A","content":"x"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", "rid-123")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "rid-123", rr.Header().Get("X-Request-Id"))
}

func TestRouter_CreateThroughFullStack(t *testing.T) {
	r := newTestRouter()

	body := `{"websiteUrl":"https://a.com","scrapedData":{"url":"https://a.com","title":"A","content":"x"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var res domain.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.True(t, res.Success)
	require.NotNil(t, res.Data)
	assert.Equal(t, domain.StatusActive, res.Data.Status)
}
