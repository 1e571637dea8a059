package dataset

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/poiesic/seromatch/core"
	"github.com/poiesic/seromatch/deepmap"
	"github.com/poiesic/seromatch/gazetteer"
)

var editParams = levenshtein.NewParams()

// Entry is one antigen or serum record with its derived identity fields.
// ID and Long come from the record (coerced to strings when necessary),
// Short is the long name with recognized place names abbreviated to their
// codes. ParentID is set for antigens (a wildtype record is its own
// parent), StrainID for sera; either is empty when the record carries
// neither.
type Entry struct {
	ID       string
	Long     string
	Short    string
	Kind     core.Kind
	ParentID string
	StrainID string

	// Properties holds every record field other than id and long.
	Properties core.Record

	record    core.Record
	directory *gazetteer.Directory
	cfg       ScoreConfig
}

// NewAntigenEntry builds an antigen Entry from a raw record. The record
// must carry id and long; a nil directory selects the default gazetteer.
func NewAntigenEntry(record core.Record, directory *gazetteer.Directory) (*Entry, error) {
	e, err := newEntry(record, core.KindAntigen, directory)
	if err != nil {
		return nil, err
	}

	if parent, ok := record["parent_id"]; ok {
		e.ParentID, _ = coerceString(parent)
	} else if isTruthy(record["wildtype"]) {
		e.ParentID = e.ID
	}

	return e, nil
}

// NewSerumEntry builds a serum Entry from a raw record. The record must
// carry id and long; a nil directory selects the default gazetteer.
func NewSerumEntry(record core.Record, directory *gazetteer.Directory) (*Entry, error) {
	e, err := newEntry(record, core.KindSerum, directory)
	if err != nil {
		return nil, err
	}

	if strain, ok := record["strain_id"]; ok {
		e.StrainID, _ = coerceString(strain)
	}

	return e, nil
}

func newEntry(record core.Record, kind core.Kind, directory *gazetteer.Directory) (*Entry, error) {
	if err := core.ValidateRecord(record); err != nil {
		return nil, err
	}
	if directory == nil {
		directory = gazetteer.Default()
	}

	id, _ := core.StringField(record, "id")
	long, _ := core.StringField(record, "long")

	properties := make(core.Record, len(record))
	for key, value := range record {
		if key == "id" || key == "long" {
			continue
		}
		properties[key] = value
	}

	e := &Entry{
		ID:         id,
		Long:       long,
		Kind:       kind,
		Properties: properties,
		record:     record,
		directory:  directory,
		cfg:        DefaultScoreConfig(),
	}

	short, err := e.deriveShortName()
	if err != nil {
		return nil, err
	}
	e.Short = short

	return e, nil
}

// deriveShortName abbreviates every place name the directory recognizes
// inside the long name. A place whose canonical name occurs literally is
// replaced everywhere it occurs; otherwise the "/"-separated segment
// closest to it by edit distance is replaced. Rewrites compound, so a
// place recognized from an early fragment can shorten the segment a later
// place would otherwise have claimed.
func (e *Entry) deriveShortName() (string, error) {
	found, err := e.directory.Search(e.Long, true, false, false)
	if err != nil {
		return "", fmt.Errorf("deriving short name for %q: %w", e.Long, err)
	}

	hit := make(map[*gazetteer.Place]bool, len(found))
	for _, place := range found {
		hit[place] = true
	}

	short := e.Long
	for _, place := range e.directory.Places {
		if !hit[place] {
			continue
		}
		if strings.Contains(short, place.Name) {
			short = strings.ReplaceAll(short, place.Name, place.Code)
			continue
		}

		segments := strings.Split(short, "/")
		best := 0
		bestDist := -1
		for i, segment := range segments {
			d := levenshtein.Distance(segment, place.Name, editParams)
			if bestDist < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
		segments[best] = place.Code
		short = strings.Join(segments, "/")
	}

	return short, nil
}

// Record returns the raw record the entry was built from.
func (e *Entry) Record() core.Record {
	return e.record
}

// DeepSearch reports whether value occurs anywhere in the raw record,
// compared literally or as a regular expression.
func (e *Entry) DeepSearch(value string, ignoreCase, asRegexp bool) (bool, error) {
	found, err := deepmap.ContainsValue(e.record, value, ignoreCase, asRegexp)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return found, nil
}

func (e *Entry) String() string {
	switch e.Kind {
	case core.KindSerum:
		return fmt.Sprintf("serum %s with name %s and strain id %s", e.ID, e.Long, e.StrainID)
	default:
		return fmt.Sprintf("antigen %s with name %s", e.ID, e.Long)
	}
}

func coerceString(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	if value == nil {
		return "", false
	}
	return fmt.Sprint(value), false
}

// isTruthy mirrors loose JSON flag values: true, non-zero numbers, and
// non-empty strings other than "false" count as set.
func isTruthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		return v != "" && !strings.EqualFold(v, "false")
	default:
		return false
	}
}
