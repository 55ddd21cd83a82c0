package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/qepting91/complaint-harvester/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestJSONWriter_WritesArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")
	records := []domain.Record{
		{Company: "turk-telekom", Text: "Şikayet <1>", User: ptr("ali"), Date: ptr("16 Ocak 10:23")},
		{Company: "turk-telekom", Text: "Şikayet 2"},
	}
	require.NoError(t, storage.JSONWriter{}.Write(path, records))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(raw)
	assert.True(t, strings.HasPrefix(body, "[\n  {"))
	assert.Contains(t, body, `"text": "Şikayet <1>"`)
	assert.Contains(t, body, `"user": null`)
	assert.Contains(t, body, `"date": null`)

	got, err := storage.ReadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestJSONWriter_EmptyIsArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, storage.JSONWriter{}.Write(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestJSONWriter_ReplacesAndLeavesNoTemp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	require.NoError(t, storage.JSONWriter{}.Write(path, []domain.Record{{Company: "a", Text: "old"}}))
	require.NoError(t, storage.JSONWriter{}.Write(path, []domain.Record{{Company: "a", Text: "new"}}))

	got, err := storage.ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Text)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestJSONWriter_FailsOnUnwritableSink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := storage.JSONWriter{}.Write(filepath.Join(blocker, "out.json"), nil)
	assert.Error(t, err)
}

func TestReadRecords_BadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := storage.ReadRecords(path)
	assert.Error(t, err)
}

func TestReadRecords_WrappedItems(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	wrapped := filepath.Join(dir, "wrapped.json")
	require.NoError(t, os.WriteFile(wrapped, []byte(`
		{"items": [{"company": "turkcell", "text": "Hat kesildi", "user": "ali", "date": null}]}`), 0o644))

	got, err := storage.ReadRecords(wrapped)
	require.NoError(t, err)
	assert.Equal(t, []domain.Record{{Company: "turkcell", Text: "Hat kesildi", User: ptr("ali")}}, got)

	noItems := filepath.Join(dir, "no-items.json")
	require.NoError(t, os.WriteFile(noItems, []byte(`{"count": 0}`), 0o644))
	got, err = storage.ReadRecords(noItems)
	require.NoError(t, err)
	assert.Empty(t, got)
}
