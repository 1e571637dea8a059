package seromatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/seromatch/core"
	"github.com/poiesic/seromatch/dataset"
	"github.com/poiesic/seromatch/storage"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase("", WithInMemoryStore())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestImportAndResolve(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)

	antigens := []core.Record{
		{"id": "14846I", "long": "A/FUJIAN/411/2002"},
		{"id": "14847K", "long": "A/BRISBANE/10/2007"},
	}

	info, err := db.ImportAntigens(ctx, "h3n2", antigens)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Count)

	ds, err := db.AntigenDataset(ctx, "h3n2")
	require.NoError(t, err)
	defer ds.Close()

	found, err := ds.AliasedSearch("A/FUJIAN/411/2002", dataset.ScoreOptions{})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "14846I", found[0].ID)
	assert.Equal(t, "A/FU/411/2002", found[0].Short)
}

func TestDatasetForMissingSet(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)

	_, err := db.AntigenDataset(ctx, "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTiterTableFromStore(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)

	_, err := db.ImportAntigens(ctx, "h3n2", []core.Record{
		{"id": "AG1", "long": "A/FUJIAN/411/2002"},
	})
	require.NoError(t, err)
	_, err = db.ImportSera(ctx, "pool", []core.Record{
		{"id": "SR1", "long": "A/FUJIAN/411/2002 POOL", "strain_id": "AG1"},
	})
	require.NoError(t, err)

	results := core.Record{
		"antigen_ids": []any{"AG1"},
		"serum_ids":   []any{"SR1"},
		"titers":      []any{[]any{"<20"}},
	}

	table, err := db.TiterTable(ctx, results, "h3n2", "pool")
	require.NoError(t, err)
	defer table.Close()

	cell, ok := table.Cell("AG1", "SR1")
	require.True(t, ok)
	assert.Equal(t, 10, cell.Numeric)
	assert.Equal(t, []int{0}, table.HomologousSera())
}
