package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/seromatch/core"
)

func TestNewEntry(t *testing.T) {
	t.Run("antigen fields", func(t *testing.T) {
		entry, err := NewAntigenEntry(core.Record{
			"id":      "14846I",
			"long":    "A/VIETNAM/1194/2004",
			"passage": "EGG",
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, "14846I", entry.ID)
		assert.Equal(t, "A/VIETNAM/1194/2004", entry.Long)
		assert.Equal(t, core.KindAntigen, entry.Kind)
		assert.Empty(t, entry.ParentID)
		assert.Equal(t, core.Record{"passage": "EGG"}, entry.Properties)
	})

	t.Run("missing long", func(t *testing.T) {
		_, err := NewAntigenEntry(core.Record{"id": "14846I"}, nil)
		assert.ErrorIs(t, err, core.ErrMissingLong)
	})

	t.Run("non-string id is coerced", func(t *testing.T) {
		entry, err := NewSerumEntry(core.Record{"id": 5.0, "long": "A/FUJIAN/411/2002"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "5", entry.ID)
	})

	t.Run("wildtype antigen is its own parent", func(t *testing.T) {
		entry, err := NewAntigenEntry(core.Record{
			"id": "W1", "long": "A/FUJIAN/411/2002", "wildtype": true,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "W1", entry.ParentID)
	})

	t.Run("explicit parent id wins over wildtype", func(t *testing.T) {
		entry, err := NewAntigenEntry(core.Record{
			"id": "V1", "long": "A/FUJIAN/411/2002", "wildtype": true, "parent_id": "W1",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "W1", entry.ParentID)
	})

	t.Run("serum strain id", func(t *testing.T) {
		entry, err := NewSerumEntry(core.Record{
			"id": "S1", "long": "A/FUJIAN/411/2002", "strain_id": "14846I",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "14846I", entry.StrainID)
		assert.Equal(t, core.KindSerum, entry.Kind)
	})
}

func TestShortName(t *testing.T) {
	tests := []struct {
		long  string
		short string
	}{
		// Literal place name replaced by its code.
		{"A/VIETNAM/1194/2004", "A/VE/1194/2004"},
		{"A/HONGKONG/1/1968", "A/HK/1/1968"},
		// Truncated spelling: the place is recognized as a fragment of
		// BRISBANE, so the nearest segment is replaced.
		{"A/BRISBAN/10/2007", "A/BR/10/2007"},
		// Nothing recognizable stays as is.
		{"B/XQZWV/1/1999", "B/XQZWV/1/1999"},
	}

	for _, tc := range tests {
		t.Run(tc.long, func(t *testing.T) {
			entry, err := NewAntigenEntry(core.Record{"id": "X", "long": tc.long}, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.short, entry.Short)
		})
	}
}

func TestAliasScore(t *testing.T) {
	entry, err := NewAntigenEntry(core.Record{
		"id":   "14846I",
		"long": "A/FUJIAN/411/2002",
	}, nil)
	require.NoError(t, err)

	t.Run("full name scores each significant fragment", func(t *testing.T) {
		// FUJIAN and 2002 count; A and 411 are noise.
		score, err := entry.AliasScore("A/FUJIAN/411/2002", ScoreOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, score)
	})

	t.Run("unrelated name scores below the match threshold", func(t *testing.T) {
		score, err := entry.AliasScore("A/BRISBANE/10/2007", ScoreOptions{})
		require.NoError(t, err)
		assert.LessOrEqual(t, score, 1)
	})

	t.Run("refined pass recovers a misspelled place", func(t *testing.T) {
		score, err := entry.AliasScore("FUJIIAN/2002", ScoreOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, score)

		score, err = entry.AliasScore("FUJIIAN/2002", ScoreOptions{Refined: true})
		require.NoError(t, err)
		assert.Equal(t, 2, score)
	})

	t.Run("recovery stays off when a fragment already names a place", func(t *testing.T) {
		// The fragment A matches many place names as a substring, so the
		// refined pass adds nothing for this query.
		score, err := entry.AliasScore("A/FUJIIAN/2002", ScoreOptions{Refined: true})
		require.NoError(t, err)
		assert.Equal(t, 1, score)
	})

	t.Run("invalid regexp fragment", func(t *testing.T) {
		_, err := entry.AliasScore("FUJIAN(/2002", ScoreOptions{})
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})
}

func TestAliasScoreMutationGate(t *testing.T) {
	entry, err := NewAntigenEntry(core.Record{
		"id":   "M1",
		"long": "A/FUJIAN/411/2002_H275Y",
	}, nil)
	require.NoError(t, err)

	t.Run("query without the mutation scores zero", func(t *testing.T) {
		score, err := entry.AliasScore("A/FUJIAN/411/2002", ScoreOptions{})
		require.NoError(t, err)
		assert.Equal(t, 0, score)
	})

	t.Run("query with the mutation is scored", func(t *testing.T) {
		score, err := entry.AliasScore("A/FUJIAN/411/2002/H275Y", ScoreOptions{})
		require.NoError(t, err)
		assert.Equal(t, 3, score)
	})

	t.Run("gate can be ignored", func(t *testing.T) {
		score, err := entry.AliasScore("A/FUJIAN/411/2002", ScoreOptions{IgnoreMutations: true})
		require.NoError(t, err)
		assert.Equal(t, 2, score)
	})

	t.Run("mutation missing from the query gates a plain entry too", func(t *testing.T) {
		plain, err := NewAntigenEntry(core.Record{"id": "M2", "long": "A/FUJIAN/411/2002"}, nil)
		require.NoError(t, err)

		score, err := plain.AliasScore("A/FUJIAN/411/2002/H275Y", ScoreOptions{})
		require.NoError(t, err)
		assert.Equal(t, 0, score)
	})
}

func TestAliasScoreFalconFallback(t *testing.T) {
	entry, err := NewAntigenEntry(core.Record{
		"id":   "F1",
		"long": "A/GYRFALCON/WASHINGTON/41088-6/2014",
	}, nil)
	require.NoError(t, err)

	// No fragment of GYRF/14 names a place, so the refined pass expands the
	// marker to the falcon naming pair.
	score, err := entry.AliasScore("GYRF/14", ScoreOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	score, err = entry.AliasScore("GYRF/14", ScoreOptions{Refined: true})
	require.NoError(t, err)
	assert.Equal(t, 3, score)
}

func TestEntryDeepSearch(t *testing.T) {
	entry, err := NewAntigenEntry(core.Record{
		"id":   "14846I",
		"long": "A/VIETNAM/1194/2004",
		"meta": core.Record{"passage": "EGG"},
	}, nil)
	require.NoError(t, err)

	t.Run("literal comparison is equality", func(t *testing.T) {
		found, err := entry.DeepSearch("egg", true, false)
		require.NoError(t, err)
		assert.True(t, found)

		found, err = entry.DeepSearch("EG", true, false)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("regexp comparison is a substring search", func(t *testing.T) {
		found, err := entry.DeepSearch("VIETNAM", true, true)
		require.NoError(t, err)
		assert.True(t, found)
	})
}
