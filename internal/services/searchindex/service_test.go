package searchindex_test

import (
	"testing"

	"github.com/killallgit/podscribe-api/internal/services/searchindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *searchindex.Index {
	t.Helper()
	index, err := searchindex.OpenMemOnly()
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })
	return index
}

func TestUpsertAndSearch(t *testing.T) {
	index := newTestIndex(t)

	require.NoError(t, index.UpsertPart(1, "hello world this is a podcast"))
	require.NoError(t, index.UpsertPart(2, "talking about goroutines today"))

	hits, err := index.Search("goroutines", 25)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, uint(2), hits[0].PartID)
	assert.Greater(t, hits[0].Score, 0.0)
}

func TestUpsertOverwritesExistingDocument(t *testing.T) {
	index := newTestIndex(t)

	require.NoError(t, index.UpsertPart(1, "original transcript text"))
	require.NoError(t, index.UpsertPart(1, "rewritten transcript text"))

	hits, err := index.Search("original", 25)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = index.Search("rewritten", 25)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, uint(1), hits[0].PartID)
}

func TestDeletePart(t *testing.T) {
	index := newTestIndex(t)

	require.NoError(t, index.UpsertPart(1, "ephemeral content"))
	require.NoError(t, index.DeletePart(1))

	hits, err := index.Search("ephemeral", 25)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestDeleteMissingPartIsNoOp(t *testing.T) {
	index := newTestIndex(t)
	assert.NoError(t, index.DeletePart(999))
}

func TestSearchNoMatches(t *testing.T) {
	index := newTestIndex(t)

	require.NoError(t, index.UpsertPart(1, "hello world"))

	hits, err := index.Search("xylophone", 25)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestRebuildFrom(t *testing.T) {
	index := newTestIndex(t)

	require.NoError(t, index.UpsertPart(1, "outdated text for part one"))
	require.NoError(t, index.RebuildFrom(map[uint]string{
		1: "fresh entry about cooking",
		2: "fresh entry about hiking",
	}))

	hits, err := index.Search("outdated", 25)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = index.Search("hiking", 25)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, uint(2), hits[0].PartID)
}
