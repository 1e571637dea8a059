package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/seromatch/core"
	"github.com/poiesic/seromatch/storage"
)

func newTestRepository(t *testing.T) storage.RecordRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func testRecords() []core.Record {
	return []core.Record{
		{"id": "14846I", "long": "A/FUJIAN/411/2002"},
		{"id": "14847K", "long": "A/BRISBANE/10/2007", "passage": "EGG"},
	}
}

func TestSaveAndGetRecordSet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	info, err := repo.SaveRecordSet(ctx, "h3n2", core.KindAntigen, testRecords())
	require.NoError(t, err)
	assert.Equal(t, "h3n2", info.Name)
	assert.Equal(t, core.KindAntigen, info.Kind)
	assert.Equal(t, 2, info.Count)
	assert.NotZero(t, info.Fingerprint)
	assert.False(t, info.InsertedAt.IsZero())

	records, got, err := repo.GetRecordSet(ctx, "h3n2", core.KindAntigen)
	require.NoError(t, err)
	assert.Equal(t, info.Fingerprint, got.Fingerprint)
	require.Len(t, records, 2)
	assert.Equal(t, "14846I", records[0]["id"])
	assert.Equal(t, "EGG", records[1]["passage"])
}

func TestRecordSetKindsAreSeparate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.SaveRecordSet(ctx, "h3n2", core.KindAntigen, testRecords())
	require.NoError(t, err)

	_, _, err = repo.GetRecordSet(ctx, "h3n2", core.KindSerum)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDuplicateRecordSet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.SaveRecordSet(ctx, "h3n2", core.KindAntigen, testRecords())
	require.NoError(t, err)

	t.Run("identical content is rejected", func(t *testing.T) {
		_, err := repo.SaveRecordSet(ctx, "h3n2", core.KindAntigen, testRecords())
		assert.ErrorIs(t, err, storage.ErrDuplicateRecordSet)
	})

	t.Run("changed content replaces the set", func(t *testing.T) {
		updated := append(testRecords(), core.Record{"id": "14848M", "long": "A/VIETNAM/1194/2004"})
		info, err := repo.SaveRecordSet(ctx, "h3n2", core.KindAntigen, updated)
		require.NoError(t, err)
		assert.Equal(t, 3, info.Count)

		records, _, err := repo.GetRecordSet(ctx, "h3n2", core.KindAntigen)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})
}

func TestListRecordSets(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.SaveRecordSet(ctx, "pool", core.KindSerum, testRecords())
	require.NoError(t, err)
	_, err = repo.SaveRecordSet(ctx, "h3n2", core.KindAntigen, testRecords())
	require.NoError(t, err)

	infos, err := repo.ListRecordSets(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	// Ordered by kind, then name.
	assert.Equal(t, core.KindAntigen, infos[0].Kind)
	assert.Equal(t, "h3n2", infos[0].Name)
	assert.Equal(t, core.KindSerum, infos[1].Kind)
	assert.Equal(t, "pool", infos[1].Name)
}

func TestDeleteRecordSet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.SaveRecordSet(ctx, "h3n2", core.KindAntigen, testRecords())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRecordSet(ctx, "h3n2", core.KindAntigen))

	_, _, err = repo.GetRecordSet(ctx, "h3n2", core.KindAntigen)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = repo.DeleteRecordSet(ctx, "h3n2", core.KindAntigen)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
