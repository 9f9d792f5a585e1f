package history_test

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/history"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.SubmissionEntry{
		ID:          "9b1c",
		ResultID:    "12345678901_ETDAH_II_1773151200000",
		CPF:         "12345678901",
		SubmittedAt: "2026-03-10T14:00:00Z",
		Total:       163,
		Classes: map[domain.AreaID]domain.Classification{
			domain.AreaAttention: domain.ClassMedia,
			domain.AreaSocial:    domain.ClassSuperior,
		},
	}

	err := h.Save(dir, entry)
	require.NoError(t, err)

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.SubmissionEntry{ID: "a", Total: 46}))
	require.NoError(t, h.Save(dir, domain.SubmissionEntry{ID: "b", Total: 171}))
	require.NoError(t, h.Save(dir, domain.SubmissionEntry{ID: "c", Total: 276}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 46, entries[0].Total)
	assert.Equal(t, 276, entries[2].Total)
}

func TestHistory_LoadEmpty(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	nestedDir := filepath.Join(dir, "deep", "nested")
	h := history.New()

	err := h.Save(nestedDir, domain.SubmissionEntry{ID: "a", Total: 50})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(nestedDir, "history", "submissions.json"))
	assert.NoError(t, err)
}

func TestHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "history", "submissions.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0644))

	_, err := history.New().Load(dir)
	assert.Error(t, err)
}

func TestHistory_ConcurrentSaves(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	const n = 20
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, h.Save(dir, domain.SubmissionEntry{ID: strconv.Itoa(i), Total: 46 + i}))
		}()
	}
	wg.Wait()

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Len(t, entries, n)

	leftovers, err := filepath.Glob(filepath.Join(dir, "history", "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}
