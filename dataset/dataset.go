package dataset

import (
	"fmt"
	"log/slog"
	"regexp"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/seromatch/core"
	"github.com/poiesic/seromatch/deepmap"
	"github.com/poiesic/seromatch/gazetteer"
)

// SearchField selects which entry field GetEntry matches against.
type SearchField string

const (
	ByID   SearchField = "id"
	ByLong SearchField = "long"
)

// Dataset is an ordered, read-only collection of entries of one kind.
// Construction derives every entry, precompiles lookup patterns, and runs
// the data-quality checks; afterwards the dataset only serves queries, so
// concurrent readers are safe. Close releases the scoring pool.
type Dataset struct {
	Entries []*Entry
	Kind    core.Kind

	directory    *gazetteer.Directory
	cfg          ScoreConfig
	logger       *slog.Logger
	pool         *ants.Pool
	poolSize     int
	idSubset     []string
	useSubset    bool
	diagnostics  []core.Diagnostic
	idPatterns   []*regexp.Regexp
	longPatterns []*regexp.Regexp
}

// Option configures a Dataset during construction.
type Option func(*Dataset) error

// WithDirectory sets the place directory used for short names and refined
// scoring. Default is the embedded gazetteer.
func WithDirectory(directory *gazetteer.Directory) Option {
	return func(d *Dataset) error {
		if directory == nil {
			return fmt.Errorf("%w: nil directory", ErrInvalidOption)
		}
		d.directory = directory
		return nil
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dataset) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}
		d.logger = logger
		return nil
	}
}

// WithScoreConfig overrides the refined-scoring configuration.
func WithScoreConfig(cfg ScoreConfig) Option {
	return func(d *Dataset) error {
		if cfg.EditRatioMax < 0 {
			return fmt.Errorf("%w: negative edit ratio", ErrInvalidOption)
		}
		d.cfg = cfg
		return nil
	}
}

// WithPoolSize sets the scoring worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(d *Dataset) error {
		if size < 1 {
			size = 1
		}
		d.poolSize = size
		return nil
	}
}

// WithIDSubset restricts the dataset to the records whose ids appear in
// ids, in subset order. An empty requested id inserts a None/None
// placeholder entry; a requested id matching no record or several records
// is reported as a diagnostic.
func WithIDSubset(ids []string) Option {
	return func(d *Dataset) error {
		d.idSubset = ids
		d.useSubset = true
		return nil
	}
}

// NewAntigenDataset builds a Dataset of antigen entries.
func NewAntigenDataset(records []core.Record, opts ...Option) (*Dataset, error) {
	return newDataset(records, core.KindAntigen, opts...)
}

// NewSerumDataset builds a Dataset of serum entries.
func NewSerumDataset(records []core.Record, opts ...Option) (*Dataset, error) {
	return newDataset(records, core.KindSerum, opts...)
}

func newDataset(records []core.Record, kind core.Kind, opts ...Option) (*Dataset, error) {
	if err := core.ValidateKind(kind); err != nil {
		return nil, err
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	d := &Dataset{
		Kind:     kind,
		cfg:      DefaultScoreConfig(),
		logger:   slog.Default(),
		poolSize: poolSize,
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if d.directory == nil {
		d.directory = gazetteer.Default()
	}

	selected := records
	if d.useSubset {
		selected = d.selectSubset(records)
	}

	d.Entries = make([]*Entry, 0, len(selected))
	for _, record := range selected {
		entry, err := d.newEntry(record)
		if err != nil {
			return nil, err
		}
		entry.cfg = d.cfg
		d.Entries = append(d.Entries, entry)
	}

	d.compilePatterns()
	d.healthCheck()

	pool, err := ants.NewPool(d.poolSize)
	if err != nil {
		return nil, err
	}
	d.pool = pool

	return d, nil
}

func (d *Dataset) newEntry(record core.Record) (*Entry, error) {
	if d.Kind == core.KindSerum {
		return NewSerumEntry(record, d.directory)
	}
	return NewAntigenEntry(record, d.directory)
}

// selectSubset picks the records named by the id subset, keeping subset
// order and every copy of a repeated id.
func (d *Dataset) selectSubset(records []core.Record) []core.Record {
	var selected []core.Record
	for _, want := range d.idSubset {
		if want == "" {
			selected = append(selected, core.Record{"id": "None", "long": "None"})
			continue
		}

		found := 0
		for _, record := range records {
			id, _ := core.StringField(record, "id")
			if id == want {
				selected = append(selected, record)
				found++
			}
		}

		switch {
		case found == 0:
			d.report(core.Diagnostic{
				Kind:    core.DiagUnmatchedID,
				Subject: want,
				Detail:  "no record with this id in the dataset",
			})
		case found > 1:
			d.report(core.Diagnostic{
				Kind:    core.DiagDuplicateMatch,
				Subject: want,
				Detail:  fmt.Sprintf("%d records with this id, all kept", found),
			})
		}
	}
	return selected
}

// compilePatterns builds the per-entry regexps GetEntry matches with. An
// id or long name that does not compile is reported and excluded from
// lookups; the entry itself stays in the dataset.
func (d *Dataset) compilePatterns() {
	d.idPatterns = make([]*regexp.Regexp, len(d.Entries))
	d.longPatterns = make([]*regexp.Regexp, len(d.Entries))

	for i, entry := range d.Entries {
		re, err := regexp.Compile(entry.ID)
		if err != nil {
			d.report(core.Diagnostic{
				Kind:    core.DiagBadPattern,
				Subject: entry.ID,
				Detail:  fmt.Sprintf("id does not compile: %v", err),
			})
		} else {
			d.idPatterns[i] = re
		}

		re, err = regexp.Compile(entry.Long)
		if err != nil {
			d.report(core.Diagnostic{
				Kind:    core.DiagBadPattern,
				Subject: entry.Long,
				Detail:  fmt.Sprintf("long name does not compile: %v", err),
			})
		} else {
			d.longPatterns[i] = re
		}
	}
}

func (d *Dataset) report(diag core.Diagnostic) {
	d.diagnostics = append(d.diagnostics, diag)
	d.logger.Warn("dataset diagnostic",
		"kind", diag.Kind.String(),
		"subject", diag.Subject,
		"detail", diag.Detail)
}

// healthCheck flags repeated ids, structurally identical records sharing a
// long name, and id or long values that were not strings in the raw
// record.
func (d *Dataset) healthCheck() {
	idCount := make(map[string]int, len(d.Entries))
	byLong := make(map[string][]*Entry)
	for _, entry := range d.Entries {
		idCount[entry.ID]++
		byLong[entry.Long] = append(byLong[entry.Long], entry)
	}

	flagged := make(map[string]bool)
	for _, entry := range d.Entries {
		if idCount[entry.ID] > 1 && !flagged[entry.ID] {
			flagged[entry.ID] = true
			d.report(core.Diagnostic{
				Kind:    core.DiagDuplicateID,
				Subject: entry.ID,
				Detail:  fmt.Sprintf("appears %d times", idCount[entry.ID]),
			})
		}

		if _, ok := entry.record["id"].(string); !ok {
			d.report(core.Diagnostic{
				Kind:    core.DiagNonStringField,
				Subject: entry.ID,
				Detail:  "id is not a string",
			})
		}
		if _, ok := entry.record["long"].(string); !ok {
			d.report(core.Diagnostic{
				Kind:    core.DiagNonStringField,
				Subject: entry.ID,
				Detail:  "long is not a string",
			})
		}
	}

	for long, entries := range byLong {
		if len(entries) < 2 {
			continue
		}
		for i, first := range entries {
			for _, second := range entries[i+1:] {
				if deepmap.DeepEqual(first.record, second.record) {
					d.report(core.Diagnostic{
						Kind:    core.DiagIdenticalRecords,
						Subject: long,
						Detail:  fmt.Sprintf("entries %s and %s are identical", first.ID, second.ID),
					})
				}
			}
		}
	}
}

// HealthCheck returns the diagnostics collected while building the
// dataset.
func (d *Dataset) HealthCheck() []core.Diagnostic {
	out := make([]core.Diagnostic, len(d.diagnostics))
	copy(out, d.diagnostics)
	return out
}

// GetEntry returns the entries whose id (or long name, per by) matches
// value. Each entry's field is treated as an unanchored case-sensitive
// regular expression searched within value, so an entry id that occurs
// inside a longer accession string still resolves. Results keep dataset
// order.
func (d *Dataset) GetEntry(value string, by SearchField) ([]*Entry, error) {
	var patterns []*regexp.Regexp
	switch by {
	case ByID:
		patterns = d.idPatterns
	case ByLong:
		patterns = d.longPatterns
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidField, by)
	}

	var found []*Entry
	for i, entry := range d.Entries {
		if patterns[i] != nil && patterns[i].MatchString(value) {
			found = append(found, entry)
		}
	}
	return found, nil
}

// DeepSearch returns the entries whose records contain value anywhere, by
// literal comparison.
func (d *Dataset) DeepSearch(value string, ignoreCase bool) ([]*Entry, error) {
	var found []*Entry
	for _, entry := range d.Entries {
		hit, err := entry.DeepSearch(value, ignoreCase, false)
		if err != nil {
			return nil, err
		}
		if hit {
			found = append(found, entry)
		}
	}
	return found, nil
}

// AliasedSearch resolves a free-text query to the best-scoring entries.
// Every entry is scored with AliasScore; if no entry reaches two, the pass
// repeats in refined mode; if the maximum is still below two the query is
// unresolved and the result empty. Otherwise every entry tied at the
// maximum is returned, in dataset order. The Refined field of opts is
// managed by the escalation and ignored.
func (d *Dataset) AliasedSearch(query string, opts ScoreOptions) ([]*Entry, error) {
	opts.Refined = false
	scores, err := d.scorePass(query, opts)
	if err != nil {
		return nil, err
	}

	if maxScore(scores) < 2 {
		opts.Refined = true
		scores, err = d.scorePass(query, opts)
		if err != nil {
			return nil, err
		}
	}

	max := maxScore(scores)
	if max < 2 {
		return nil, nil
	}

	var found []*Entry
	for i, score := range scores {
		if score == max {
			found = append(found, d.Entries[i])
		}
	}
	return found, nil
}

// scorePass scores every entry on the worker pool. Scores land in an
// index-addressed slice so the result is independent of scheduling.
func (d *Dataset) scorePass(query string, opts ScoreOptions) ([]int, error) {
	scores := make([]int, len(d.Entries))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, entry := range d.Entries {
		wg.Add(1)
		err := d.pool.Submit(func() {
			defer wg.Done()
			score, scoreErr := entry.AliasScore(query, opts)
			if scoreErr != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = scoreErr
				}
				mu.Unlock()
				return
			}
			scores[i] = score
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return scores, nil
}

func maxScore(scores []int) int {
	max := 0
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	return max
}

// Fields returns every field name present across the dataset's records,
// sorted. id and long are always included.
func (d *Dataset) Fields() []string {
	fields := map[string]bool{"id": true, "long": true}
	for _, entry := range d.Entries {
		for key := range entry.Properties {
			fields[key] = true
		}
	}

	out := make([]string, 0, len(fields))
	for field := range fields {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

// IDs returns every entry id in dataset order.
func (d *Dataset) IDs() []string {
	ids := make([]string, len(d.Entries))
	for i, entry := range d.Entries {
		ids[i] = entry.ID
	}
	return ids
}

// Close releases the scoring pool. The dataset must not be searched after
// Close.
func (d *Dataset) Close() {
	if d.pool != nil {
		d.pool.Release()
	}
}
