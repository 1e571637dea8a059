package titer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/seromatch/core"
)

func testAntigens() []core.Record {
	return []core.Record{
		{"id": "AG1", "long": "A/FUJIAN/411/2002"},
		{"id": "AG2", "long": "A/BRISBANE/10/2007"},
	}
}

func testSera() []core.Record {
	return []core.Record{
		{"id": "SR1", "long": "A/FUJIAN/411/2002 POOL", "strain_id": "AG1"},
		{"id": "SR2", "long": "A/BRISBANE/10/2007 POOL", "strain_id": "AG2"},
		{"id": "SR3", "long": "A/VIETNAM/1194/2004 POOL", "strain_id": "AG9"},
	}
}

func testResults() core.Record {
	return core.Record{
		"antigen_ids": []any{"AG1", "AG2"},
		"serum_ids":   []any{"SR1", "SR2", "SR3"},
		"titers": []any{
			[]any{"1280", "<20", "20/40"},
			[]any{">5120", "640", "80"},
		},
	}
}

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := New(testResults(), testAntigens(), testSera())
	require.NoError(t, err)
	t.Cleanup(table.Close)
	return table
}

func TestNewTable(t *testing.T) {
	table := newTestTable(t)

	require.Len(t, table.Antigens, 2)
	require.Len(t, table.Sera, 3)
	assert.Empty(t, table.HealthCheck())

	t.Run("cells are keyed by id pair", func(t *testing.T) {
		cell, ok := table.Cell("AG1", "SR2")
		require.True(t, ok)
		assert.Equal(t, Cell{Raw: "<20", Numeric: 10, LessThan: true}, cell)

		cell, ok = table.Cell("AG2", "SR1")
		require.True(t, ok)
		assert.Equal(t, Cell{Raw: ">5120", Numeric: 10240, GreaterThan: true}, cell)

		cell, ok = table.Cell("AG1", "SR3")
		require.True(t, ok)
		assert.Equal(t, 28, cell.Numeric)

		_, ok = table.Cell("AG9", "SR1")
		assert.False(t, ok)
	})
}

func TestNewTableErrors(t *testing.T) {
	t.Run("missing titers", func(t *testing.T) {
		results := testResults()
		delete(results, "titers")
		_, err := New(results, testAntigens(), testSera())
		assert.ErrorIs(t, err, ErrInvalidResults)
	})

	t.Run("row count mismatch", func(t *testing.T) {
		results := testResults()
		results["titers"] = []any{[]any{"40", "40", "40"}}
		_, err := New(results, testAntigens(), testSera())
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("row length mismatch", func(t *testing.T) {
		results := testResults()
		results["titers"] = []any{
			[]any{"40", "40"},
			[]any{"40", "40", "40"},
		}
		_, err := New(results, testAntigens(), testSera())
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("bad titer value", func(t *testing.T) {
		results := testResults()
		results["titers"] = []any{
			[]any{"40", "40", "bogus"},
			[]any{"40", "40", "40"},
		}
		_, err := New(results, testAntigens(), testSera())
		assert.ErrorIs(t, err, ErrNotNumeric)
	})
}

func TestRepeatedStrainIDs(t *testing.T) {
	sera := testSera()
	sera[2]["strain_id"] = "AG1"

	results := testResults()
	table, err := New(results, testAntigens(), sera)
	require.NoError(t, err)
	t.Cleanup(table.Close)

	diags := table.HealthCheck()
	require.Len(t, diags, 1)
	assert.Equal(t, core.DiagRepeatedStrainID, diags[0].Kind)
	assert.Equal(t, "AG1", diags[0].Subject)
}

func TestHomologousSera(t *testing.T) {
	table := newTestTable(t)

	// SR1 was raised against AG1 and SR2 against AG2; no serum matches AG9.
	assert.Equal(t, []int{0, 1}, table.HomologousSera())
}

func TestGrid(t *testing.T) {
	table := newTestTable(t)

	t.Run("numeric", func(t *testing.T) {
		g := table.Grid(GridOptions{})
		assert.Equal(t, []string{"A/FUJIAN/411/2002", "A/BRISBANE/10/2007"}, g.RowLabels)
		assert.Equal(t, []string{
			"A/FUJIAN/411/2002 POOL",
			"A/BRISBANE/10/2007 POOL",
			"A/VIETNAM/1194/2004 POOL",
		}, g.ColLabels)
		assert.Equal(t, [][]string{
			{"1280", "10", "28"},
			{"10240", "640", "80"},
		}, g.Cells)
	})

	t.Run("as is", func(t *testing.T) {
		g := table.Grid(GridOptions{AsIs: true})
		assert.Equal(t, [][]string{
			{"1280", "<20", "20/40"},
			{">5120", "640", "80"},
		}, g.Cells)
	})

	t.Run("rethresholded", func(t *testing.T) {
		g := table.Grid(GridOptions{Thresholded: true})
		assert.Equal(t, [][]string{
			{"1280", "<20", "28"},
			{">5120", "640", "80"},
		}, g.Cells)
	})

	t.Run("with id and strain id headers", func(t *testing.T) {
		g := table.Grid(GridOptions{AddIDs: true, AddStrainIDs: true})
		assert.Equal(t, []string{"id", "serum strain id", "A/FUJIAN/411/2002", "A/BRISBANE/10/2007"}, g.RowLabels)
		assert.Equal(t, []string{
			"id",
			"A/FUJIAN/411/2002 POOL",
			"A/BRISBANE/10/2007 POOL",
			"A/VIETNAM/1194/2004 POOL",
		}, g.ColLabels)
		assert.Equal(t, [][]string{
			{"", "SR1", "SR2", "SR3"},
			{"", "AG1", "AG2", "AG9"},
			{"AG1", "1280", "10", "28"},
			{"AG2", "10240", "640", "80"},
		}, g.Cells)
	})
}
