package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rkarlsen/opboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadFirstRun(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, state.Empty())
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	ctx := context.Background()

	hours := 8
	state := NewState()
	state.ID = "snap-1"
	state.SavedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	state.SetCategory("HR", "Recruiting", CategoryState{
		Title:       "Talent",
		Status:      string(domain.StatusComplete),
		ActualHours: &hours,
		Aspects: map[string]AspectState{
			domain.AspectProcess: {Complete: true, Note: "done"},
		},
	})

	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestFileStore_SaveCreatesParentDir(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "dir", "snapshot.json"))
	require.NoError(t, store.Save(context.Background(), NewState()))

	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "snapshot.json"))
	require.NoError(t, store.Save(context.Background(), NewState()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "snapshot.json", entries[0].Name())
}

func TestFileStore_CorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileStore(path).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
	assert.Contains(t, err.Error(), path)
}

func TestFileStore_IgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	doc := `{
		"schema_version": 9,
		"future_field": {"nested": true},
		"areas": {
			"HR": {"categories": {"Recruiting": {
				"aspects": {"Process": {"complete": true, "weight": 3}}
			}}}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	state, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	cs, ok := state.Category("HR", "Recruiting")
	require.True(t, ok)
	assert.True(t, cs.Aspects[domain.AspectProcess].Complete)
}

func TestFileStore_SaveOverwritesPrior(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	ctx := context.Background()

	first := NewState()
	first.SetCategory("HR", "Recruiting", CategoryState{
		Aspects: map[string]AspectState{domain.AspectProcess: {Complete: true}},
	})
	require.NoError(t, store.Save(ctx, first))

	second := NewState()
	second.SetCategory("HR", "Recruiting", CategoryState{
		Aspects: map[string]AspectState{domain.AspectProcess: {Complete: false}},
	})
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	cs, _ := loaded.Category("HR", "Recruiting")
	assert.False(t, cs.Aspects[domain.AspectProcess].Complete)
}
