package titer

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/poiesic/seromatch/core"
	"github.com/poiesic/seromatch/dataset"
	"github.com/poiesic/seromatch/gazetteer"
)

// Cell is one measurement of the table: the raw value as imported, its
// numeric conversion, and whether the raw value was thresholded.
type Cell struct {
	Raw         string
	Numeric     int
	LessThan    bool
	GreaterThan bool
}

// Table binds a results record to its antigen and serum entries and keeps
// every measurement addressable by (antigen id, serum id). Built once,
// read-only afterwards.
type Table struct {
	Antigens []*dataset.Entry
	Sera     []*dataset.Entry

	cells map[string]map[string]Cell

	antigenSet  *dataset.Dataset
	serumSet    *dataset.Dataset
	logger      *slog.Logger
	directory   *gazetteer.Directory
	diagnostics []core.Diagnostic
}

// Option configures a Table during construction.
type Option func(*Table) error

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}
		t.logger = logger
		return nil
	}
}

// WithDirectory sets the place directory handed to the underlying
// datasets.
func WithDirectory(directory *gazetteer.Directory) Option {
	return func(t *Table) error {
		if directory == nil {
			return fmt.Errorf("%w: nil directory", ErrInvalidOption)
		}
		t.directory = directory
		return nil
	}
}

// New builds a Table from a results record and the full antigen and serum
// record lists. The results record must carry antigen_ids, serum_ids and a
// titers matrix shaped antigens x sera; the datasets are restricted to
// exactly those ids, in titer-table order.
func New(results core.Record, antigenRecords, serumRecords []core.Record, opts ...Option) (*Table, error) {
	t := &Table{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	antigenIDs, err := idList(results, "antigen_ids")
	if err != nil {
		return nil, err
	}
	serumIDs, err := idList(results, "serum_ids")
	if err != nil {
		return nil, err
	}
	titers, err := titerMatrix(results)
	if err != nil {
		return nil, err
	}

	dsOpts := []dataset.Option{dataset.WithLogger(t.logger)}
	if t.directory != nil {
		dsOpts = append(dsOpts, dataset.WithDirectory(t.directory))
	}

	antigenSet, err := dataset.NewAntigenDataset(antigenRecords,
		append(dsOpts, dataset.WithIDSubset(antigenIDs))...)
	if err != nil {
		return nil, err
	}
	serumSet, err := dataset.NewSerumDataset(serumRecords,
		append(dsOpts, dataset.WithIDSubset(serumIDs))...)
	if err != nil {
		antigenSet.Close()
		return nil, err
	}

	t.antigenSet = antigenSet
	t.serumSet = serumSet
	t.Antigens = antigenSet.Entries
	t.Sera = serumSet.Entries

	if err := t.convertCells(titers); err != nil {
		t.Close()
		return nil, err
	}

	t.checkStrainIDs()

	return t, nil
}

func idList(results core.Record, key string) ([]string, error) {
	raw, ok := results[key].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidResults, key)
	}
	ids := make([]string, len(raw))
	for i, v := range raw {
		if s, ok := v.(string); ok {
			ids[i] = s
		} else {
			ids[i] = fmt.Sprint(v)
		}
	}
	return ids, nil
}

func titerMatrix(results core.Record) ([][]any, error) {
	raw, ok := results["titers"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing titers", ErrInvalidResults)
	}
	matrix := make([][]any, len(raw))
	for i, row := range raw {
		cells, ok := row.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: titer row %d is not a list", ErrInvalidResults, i)
		}
		matrix[i] = cells
	}
	return matrix, nil
}

// convertCells builds the per-pair lookup. The matrix must be shaped
// antigens x sera; any cell that fails conversion fails the table.
func (t *Table) convertCells(titers [][]any) error {
	if len(titers) != len(t.Antigens) {
		return fmt.Errorf("%w: %d titer rows for %d antigens",
			ErrShapeMismatch, len(titers), len(t.Antigens))
	}

	t.cells = make(map[string]map[string]Cell, len(t.Antigens))
	for i, antigen := range t.Antigens {
		row := titers[i]
		if len(row) != len(t.Sera) {
			return fmt.Errorf("%w: row %d has %d titers for %d sera",
				ErrShapeMismatch, i, len(row), len(t.Sera))
		}

		byserum := make(map[string]Cell, len(t.Sera))
		for j, serum := range t.Sera {
			cell, err := convertCell(row[j])
			if err != nil {
				return fmt.Errorf("antigen %s, serum %s: %w", antigen.ID, serum.ID, err)
			}
			byserum[serum.ID] = cell
		}
		t.cells[antigen.ID] = byserum
	}
	return nil
}

func convertCell(value any) (Cell, error) {
	raw, isString := value.(string)
	if !isString {
		// Numeric cells pass through unconverted.
		if f, ok := value.(float64); ok {
			return Cell{Raw: fmt.Sprint(value), Numeric: int(f)}, nil
		}
		return Cell{}, fmt.Errorf("%w: %v", ErrNotNumeric, value)
	}

	numeric, err := Convert(raw)
	if err != nil {
		return Cell{}, err
	}
	return Cell{
		Raw:         raw,
		Numeric:     numeric,
		LessThan:    strings.Contains(raw, "<"),
		GreaterThan: strings.Contains(raw, ">"),
	}, nil
}

// checkStrainIDs flags serum strain ids appearing more than once, a sign
// of repeated measurements.
func (t *Table) checkStrainIDs() {
	counts := make(map[string]int, len(t.Sera))
	for _, serum := range t.Sera {
		if serum.StrainID != "" {
			counts[serum.StrainID]++
		}
	}

	flagged := make(map[string]bool)
	for _, serum := range t.Sera {
		if counts[serum.StrainID] > 1 && !flagged[serum.StrainID] {
			flagged[serum.StrainID] = true
			diag := core.Diagnostic{
				Kind:    core.DiagRepeatedStrainID,
				Subject: serum.StrainID,
				Detail:  fmt.Sprintf("appears %d times, possible repeated measurement", counts[serum.StrainID]),
			}
			t.diagnostics = append(t.diagnostics, diag)
			t.logger.Warn("titer table diagnostic",
				"kind", diag.Kind.String(),
				"subject", diag.Subject,
				"detail", diag.Detail)
		}
	}
}

// HealthCheck returns the diagnostics collected while building the table.
func (t *Table) HealthCheck() []core.Diagnostic {
	out := make([]core.Diagnostic, len(t.diagnostics))
	copy(out, t.diagnostics)
	return out
}

// Cell returns the measurement for the (antigen id, serum id) pair.
func (t *Table) Cell(antigenID, serumID string) (Cell, bool) {
	row, ok := t.cells[antigenID]
	if !ok {
		return Cell{}, false
	}
	cell, ok := row[serumID]
	return cell, ok
}

// HomologousSera returns, for each antigen in table order, the index of
// the serum raised against it (strain id equal to the antigen id), or -1
// when the table has none.
func (t *Table) HomologousSera() []int {
	order := make([]int, len(t.Antigens))
	for i, antigen := range t.Antigens {
		order[i] = -1
		for j, serum := range t.Sera {
			if serum.StrainID == antigen.ID {
				order[i] = j
				break
			}
		}
	}
	return order
}

// GridOptions controls Grid rendering.
type GridOptions struct {
	// AsIs renders raw values, thresholds and pairs included.
	AsIs bool

	// Thresholded re-applies thresholds to numeric values: a less-than
	// cell renders as "<" twice the numeric value, a greater-than cell as
	// ">" half of it.
	Thresholded bool

	// AddIDs prepends an id row and an id column.
	AddIDs bool

	// AddStrainIDs prepends a serum strain id row.
	AddStrainIDs bool
}

// Grid is a rendered titer table: antigen rows by serum columns, labeled
// by long names, with optional id and strain-id header lines.
type Grid struct {
	RowLabels []string
	ColLabels []string
	Cells     [][]string
}

// Grid renders the table. Cells are numeric by default; see GridOptions.
func (t *Table) Grid(opts GridOptions) *Grid {
	var extraRows, extraCols []string
	if opts.AddIDs {
		extraRows = append(extraRows, "id")
		extraCols = append(extraCols, "id")
	}
	if opts.AddStrainIDs {
		extraRows = append(extraRows, "serum strain id")
	}

	g := &Grid{
		RowLabels: make([]string, 0, len(extraRows)+len(t.Antigens)),
		ColLabels: make([]string, 0, len(extraCols)+len(t.Sera)),
	}
	g.RowLabels = append(g.RowLabels, extraRows...)
	for _, antigen := range t.Antigens {
		g.RowLabels = append(g.RowLabels, antigen.Long)
	}
	g.ColLabels = append(g.ColLabels, extraCols...)
	for _, serum := range t.Sera {
		g.ColLabels = append(g.ColLabels, serum.Long)
	}

	g.Cells = make([][]string, len(g.RowLabels))
	for r := range g.Cells {
		g.Cells[r] = make([]string, len(g.ColLabels))
	}

	for r, label := range extraRows {
		for j, serum := range t.Sera {
			switch label {
			case "id":
				g.Cells[r][len(extraCols)+j] = serum.ID
			case "serum strain id":
				g.Cells[r][len(extraCols)+j] = serum.StrainID
			}
		}
	}

	for i, antigen := range t.Antigens {
		r := len(extraRows) + i
		if opts.AddIDs {
			g.Cells[r][0] = antigen.ID
		}
		for j, serum := range t.Sera {
			cell := t.cells[antigen.ID][serum.ID]
			g.Cells[r][len(extraCols)+j] = renderCell(cell, opts)
		}
	}

	return g
}

func renderCell(cell Cell, opts GridOptions) string {
	if opts.AsIs {
		return cell.Raw
	}
	if opts.Thresholded {
		if cell.LessThan {
			return "<" + strconv.Itoa(cell.Numeric*2)
		}
		if cell.GreaterThan {
			return ">" + strconv.Itoa(cell.Numeric/2)
		}
	}
	return strconv.Itoa(cell.Numeric)
}

// Close releases the underlying datasets.
func (t *Table) Close() {
	if t.antigenSet != nil {
		t.antigenSet.Close()
	}
	if t.serumSet != nil {
		t.serumSet.Close()
	}
}
