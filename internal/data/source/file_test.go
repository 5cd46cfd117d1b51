package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/eventboard/internal/core/config"
	"github.com/colonyops/eventboard/internal/core/event"
)

func write(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestFile_Load(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "b.yaml", `
- id: "2"
  title: Design review
  date: 2024-01-02
  status: in-progress
`)
	write(t, dir, "a.json", `{"events": [{"id": "1", "title": "Kickoff", "date": "2024-01-01", "status": "completed"}]}`)
	write(t, dir, "nested/c.yaml", `
events:
  - id: "3"
    title: Retro
    date: 2024-01-03
    status: not-started
    description: "## Notes"
`)

	f := &File{Pattern: filepath.Join(dir, "**", "*.{yaml,json}")}
	events, err := f.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, "1", events[0].ID, "files are read in sorted path order")
	assert.Equal(t, "2", events[1].ID)
	assert.Equal(t, "3", events[2].ID)
	assert.Equal(t, event.StatusInProgress, events[1].Status)
	assert.Equal(t, "## Notes", events[2].Description)
}

func TestFile_NoMatches(t *testing.T) {
	f := &File{Pattern: filepath.Join(t.TempDir(), "*.yaml")}
	_, err := f.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestFile_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "empty.yaml", "")

	events, err := (&File{Pattern: filepath.Join(dir, "*.yaml")}).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestFile_InvalidRecords(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "bad.yaml", `
- id: ""
  title: x
  date: 01/02/2024
  status: done
`)

	_, err := (&File{Pattern: filepath.Join(dir, "*.yaml")}).Load(context.Background())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	fields := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = fe.Field
	}
	assert.Equal(t, []string{"events[0].id", "events[0].status", "events[0].date"}, fields)
}

func TestFile_DuplicateIDsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	rec := `- {id: "1", title: x, date: 2024-01-01, status: completed}`
	write(t, dir, "a.yaml", rec)
	write(t, dir, "b.yaml", rec)

	_, err := (&File{Pattern: filepath.Join(dir, "*.yaml")}).Load(context.Background())
	assert.ErrorIs(t, err, event.ErrDuplicateID)
}

func TestFile_ScalarDocument(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "odd.yaml", "just a string")

	_, err := (&File{Pattern: filepath.Join(dir, "*.yaml")}).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestNew(t *testing.T) {
	cfg := config.DefaultConfig()

	s, err := New(cfg.Source)
	require.NoError(t, err)
	m, ok := s.(*Mock)
	require.True(t, ok)
	assert.Equal(t, 300, m.Count)
	assert.Equal(t, "mock (300 events)", Describe(s))

	cfg.Source.Kind = config.SourceFile
	cfg.Source.Path = "events/*.yaml"
	s, err = New(cfg.Source)
	require.NoError(t, err)
	assert.Equal(t, "file events/*.yaml", Describe(s))

	cfg.Source.Kind = config.SourceSQLite
	cfg.Source.Path = "events.db"
	s, err = New(cfg.Source)
	require.NoError(t, err)
	assert.Equal(t, "sqlite events.db", Describe(s))

	cfg.Source.Kind = "carrier-pigeon"
	_, err = New(cfg.Source)
	assert.Error(t, err)
}
