package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore opens a store against a fresh database file with a tasks
// table mirroring the application schema.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	err = s.CreateTable(context.Background(), "tasks", []Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true, AutoIncrement: true},
		{Name: "title", Type: "TEXT"},
		{Name: "description", Type: "TEXT"},
		{Name: "timeCreated", Type: "DATETIME", Default: "CURRENT_TIMESTAMP"},
	})
	require.NoError(t, err)
	return s
}

func addTask(t *testing.T, s *Store, title, description string) {
	t.Helper()
	err := s.AddRecord(context.Background(), Record{
		Table: "tasks",
		Data:  map[string]any{"title": title, "description": description},
	})
	require.NoError(t, err)
}

func TestCreateTableRequiresColumns(t *testing.T) {
	t.Parallel()

	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	err = s.CreateTable(context.Background(), "empty", nil)
	require.Error(t, err)
}

func TestCreateTableIsIdempotent(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	err := s.CreateTable(context.Background(), "tasks", []Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true, AutoIncrement: true},
		{Name: "title", Type: "TEXT"},
	})
	require.NoError(t, err, "CREATE TABLE IF NOT EXISTS must tolerate an existing table")
}

func TestAddAndGetRecord(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	addTask(t, s, "Buy milk", "2% milk")

	rec, err := s.GetRecord(ctx, "tasks", map[string]any{"title": "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", rec.Data["title"])
	assert.Equal(t, "2% milk", rec.Data["description"])
	assert.NotEmpty(t, rec.Data["timeCreated"], "default timestamp should be populated")
}

func TestGetRecordNoMatch(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	_, err := s.GetRecord(context.Background(), "tasks", map[string]any{"title": "nope"})
	require.ErrorIs(t, err, ErrNoRecord)
}

func TestGetRecordByPseudoID(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	addTask(t, s, "first", "a")
	addTask(t, s, "second", "b")
	addTask(t, s, "third", "c")

	rec, err := s.GetRecordByPseudoID(ctx, "tasks", 2)
	require.NoError(t, err)
	assert.Equal(t, "second", rec.Data["title"])

	_, err = s.GetRecordByPseudoID(ctx, "tasks", 4)
	require.ErrorIs(t, err, ErrNoRecord)

	_, err = s.GetRecordByPseudoID(ctx, "tasks", 0)
	require.ErrorIs(t, err, ErrNoRecord)
}

func TestGetAllRecordsOrderedByID(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	recs, err := s.GetAllRecords(ctx, "tasks")
	require.NoError(t, err)
	assert.Empty(t, recs)

	addTask(t, s, "first", "a")
	addTask(t, s, "second", "b")

	recs, err = s.GetAllRecords(ctx, "tasks")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "first", recs[0].Data["title"])
	assert.Equal(t, "second", recs[1].Data["title"])
}

func TestRemoveRecord(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	addTask(t, s, "keep", "a")
	addTask(t, s, "drop", "b")

	err := s.RemoveRecord(ctx, "tasks", map[string]any{"title": "drop"})
	require.NoError(t, err)

	recs, err := s.GetAllRecords(ctx, "tasks")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "keep", recs[0].Data["title"])
}

func TestRemoveRecordByPseudoID(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	addTask(t, s, "first", "a")
	addTask(t, s, "second", "b")
	addTask(t, s, "third", "c")

	require.NoError(t, s.RemoveRecordByPseudoID(ctx, "tasks", 2))

	recs, err := s.GetAllRecords(ctx, "tasks")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "first", recs[0].Data["title"])
	assert.Equal(t, "third", recs[1].Data["title"])

	// Pseudo-IDs re-map after a removal: position 2 is now the old third.
	rec, err := s.GetRecordByPseudoID(ctx, "tasks", 2)
	require.NoError(t, err)
	assert.Equal(t, "third", rec.Data["title"])
}
