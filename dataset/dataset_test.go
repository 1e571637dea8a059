package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/seromatch/core"
)

func testAntigenRecords() []core.Record {
	return []core.Record{
		{"id": "14846I", "long": "A/FUJIAN/411/2002", "passage": "EGG"},
		{"id": "14847K", "long": "A/BRISBANE/10/2007"},
		{"id": "14848M", "long": "A/VIETNAM/1194/2004"},
	}
}

func newTestDataset(t *testing.T, records []core.Record, opts ...Option) *Dataset {
	t.Helper()
	d, err := NewAntigenDataset(records, opts...)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	return d
}

func TestNewDataset(t *testing.T) {
	t.Run("entries keep input order", func(t *testing.T) {
		d := newTestDataset(t, testAntigenRecords())
		assert.Equal(t, []string{"14846I", "14847K", "14848M"}, d.IDs())
		assert.Equal(t, core.KindAntigen, d.Kind)
		assert.Empty(t, d.HealthCheck())
	})

	t.Run("record missing long fails", func(t *testing.T) {
		_, err := NewAntigenDataset([]core.Record{{"id": "X"}})
		assert.ErrorIs(t, err, core.ErrMissingLong)
	})

	t.Run("fields", func(t *testing.T) {
		d := newTestDataset(t, testAntigenRecords())
		assert.Equal(t, []string{"id", "long", "passage"}, d.Fields())
	})
}

func TestDatasetIDSubset(t *testing.T) {
	records := []core.Record{
		{"id": "R1", "long": "A/FUJIAN/411/2002"},
		{"id": "R2", "long": "A/BRISBANE/10/2007"},
		{"id": "R2", "long": "A/BRISBANE/10/2007"},
	}

	d := newTestDataset(t, records, WithIDSubset([]string{"R2", "", "R9"}))

	// Both R2 copies, then the placeholder for the blank id.
	require.Len(t, d.Entries, 3)
	assert.Equal(t, []string{"R2", "R2", "None"}, d.IDs())
	assert.Equal(t, "None", d.Entries[2].Long)

	kinds := make(map[core.DiagnosticKind]int)
	for _, diag := range d.HealthCheck() {
		kinds[diag.Kind]++
	}
	assert.Equal(t, 1, kinds[core.DiagDuplicateMatch])
	assert.Equal(t, 1, kinds[core.DiagUnmatchedID])
	assert.Equal(t, 1, kinds[core.DiagDuplicateID])
}

func TestGetEntry(t *testing.T) {
	d := newTestDataset(t, []core.Record{
		{"id": "A1", "long": "A/FUJIAN/411/2002"},
		{"id": "A2", "long": "A/BRISBANE/10/2007"},
	})

	t.Run("by id", func(t *testing.T) {
		found, err := d.GetEntry("A1", ByID)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "A1", found[0].ID)
	})

	t.Run("id embedded in a longer string still resolves", func(t *testing.T) {
		found, err := d.GetEntry("serum pool A2/2007", ByID)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "A2", found[0].ID)
	})

	t.Run("by long", func(t *testing.T) {
		found, err := d.GetEntry("A/BRISBANE/10/2007", ByLong)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "A2", found[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		found, err := d.GetEntry("B9", ByID)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("invalid field", func(t *testing.T) {
		_, err := d.GetEntry("A1", SearchField("short"))
		assert.ErrorIs(t, err, ErrInvalidField)
	})
}

func TestGetEntryBadPattern(t *testing.T) {
	d := newTestDataset(t, []core.Record{
		{"id": "A1(", "long": "A/FUJIAN/411/2002"},
		{"id": "A2", "long": "A/BRISBANE/10/2007"},
	})

	kinds := make(map[core.DiagnosticKind]int)
	for _, diag := range d.HealthCheck() {
		kinds[diag.Kind]++
	}
	assert.Equal(t, 1, kinds[core.DiagBadPattern])

	// The entry with the uncompilable id is skipped, not fatal.
	found, err := d.GetEntry("A2", ByID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "A2", found[0].ID)
}

func TestDatasetDeepSearch(t *testing.T) {
	d := newTestDataset(t, testAntigenRecords())

	found, err := d.DeepSearch("egg", true)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "14846I", found[0].ID)

	found, err = d.DeepSearch("egg", false)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestAliasedSearch(t *testing.T) {
	d := newTestDataset(t, testAntigenRecords())

	t.Run("canonical name resolves to one entry", func(t *testing.T) {
		found, err := d.AliasedSearch("A/FUJIAN/411/2002", ScoreOptions{})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "14846I", found[0].ID)
	})

	t.Run("misspelled place resolves through the refined pass", func(t *testing.T) {
		found, err := d.AliasedSearch("FUJIIAN/2002", ScoreOptions{})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "14846I", found[0].ID)
	})

	t.Run("unresolvable query returns empty", func(t *testing.T) {
		found, err := d.AliasedSearch("B/NOWHERE/1/1999", ScoreOptions{})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("ties are returned intact", func(t *testing.T) {
		tied := newTestDataset(t, []core.Record{
			{"id": "T1", "long": "A/FUJIAN/411/2002", "passage": "EGG"},
			{"id": "T2", "long": "A/FUJIAN/411/2002", "passage": "CELL"},
		})

		found, err := tied.AliasedSearch("A/FUJIAN/411/2002", ScoreOptions{})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "T1", found[0].ID)
		assert.Equal(t, "T2", found[1].ID)
	})

	t.Run("invalid query", func(t *testing.T) {
		_, err := d.AliasedSearch("FUJIAN(/2002", ScoreOptions{})
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})
}

func TestDatasetHealthCheck(t *testing.T) {
	records := []core.Record{
		{"id": "D1", "long": "A/FUJIAN/411/2002"},
		{"id": "D1", "long": "A/FUJIAN/411/2002"},
		{"id": "D2", "long": "A/BRISBANE/10/2007", "passage": "EGG"},
		{"id": "D3", "long": "A/BRISBANE/10/2007", "passage": "CELL"},
		{"id": 4.0, "long": "A/VIETNAM/1194/2004"},
	}

	d := newTestDataset(t, records)

	kinds := make(map[core.DiagnosticKind]int)
	for _, diag := range d.HealthCheck() {
		kinds[diag.Kind]++
	}

	// D1 is repeated and its two records are structurally identical; the
	// two BRISBANE records share a long name but differ, so they are not
	// flagged as identical.
	assert.Equal(t, 1, kinds[core.DiagDuplicateID])
	assert.Equal(t, 1, kinds[core.DiagIdenticalRecords])
	assert.Equal(t, 1, kinds[core.DiagNonStringField])
}
