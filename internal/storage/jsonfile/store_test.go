package jsonfile

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

func newTestStore(t *testing.T) *Store[record] {
	t.Helper()
	return NewStore[record](filepath.Join(t.TempDir(), "records.json"))
}

func TestReadMissingFileInitializesEmpty(t *testing.T) {
	store := newTestStore(t)

	records, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, records)

	// The file must now exist containing an empty array.
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	want := []record{{ID: "1", Name: "Pastel"}, {ID: "2", Name: "Caldo de Cana"}}
	require.NoError(t, store.Write(want))

	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadCorruptFileFailsLoudly(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")

	// The corrupt content must not be clobbered by the failed read.
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestUpdateAbortsOnError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Write([]record{{ID: "1", Name: "Pastel"}}))

	err := store.Update(func(records []record) ([]record, error) {
		return nil, assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	got, err := store.Read()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestConcurrentUpdatesLoseNothing(t *testing.T) {
	store := newTestStore(t)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update(func(records []record) ([]record, error) {
				return append(records, record{ID: "x"}), nil
			})
		}()
	}
	wg.Wait()

	got, err := store.Read()
	require.NoError(t, err)
	assert.Len(t, got, n)
}
