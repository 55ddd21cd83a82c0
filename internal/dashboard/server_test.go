package dashboard_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/qepting91/complaint-harvester/internal/dashboard"
	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/qepting91/complaint-harvester/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestRender(t *testing.T) {
	t.Parallel()

	records := []domain.Record{
		{Company: "c", Text: "1", User: ptr("ali"), Date: ptr("16 Ocak 10:23")},
		{Company: "c", Text: "2", User: ptr("ali"), Date: ptr("16 Ocak 11:00")},
		{Company: "c", Text: "3", User: ptr("veli"), Date: ptr("2 Şubat 09:00")},
		{Company: "c", Text: "4"},
	}
	var buf bytes.Buffer
	require.NoError(t, dashboard.Render(&buf, records, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)))

	html := buf.String()
	assert.Contains(t, html, "Complaints per Day")
	assert.Contains(t, html, "Most Active Users")
	assert.Contains(t, html, "2026-01-16")
	assert.Contains(t, html, "2026-02-02")
	assert.Contains(t, html, "veli")
}

func TestHandler(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := httptest.NewRecorder()
	dashboard.Handler(filepath.Join(dir, "none.json")).ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, missing.Code)

	path := filepath.Join(dir, "data.json")
	require.NoError(t, storage.JSONWriter{}.Write(path, []domain.Record{{Company: "c", Text: "x", User: ptr("ali")}}))
	ok := httptest.NewRecorder()
	dashboard.Handler(path).ServeHTTP(ok, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Contains(t, ok.Body.String(), "Most Active Users")
}
