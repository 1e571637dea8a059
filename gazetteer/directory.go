package gazetteer

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/poiesic/seromatch/core"
)

// PlaceDef is one row of a code table: a short code and the place name it
// stands for.
type PlaceDef struct {
	Code string
	Name string
}

// Directory is an ordered, read-only collection of places built from a code
// table. Construction records diagnostics for malformed rows and duplicate
// names or codes; the collection itself is kept as given, duplicates
// included, so lookups can surface them.
type Directory struct {
	Places []*Place

	diagnostics []core.Diagnostic
	logger      *slog.Logger
}

// Option configures a Directory during construction.
type Option func(*Directory) error

// WithLogger sets the logger used to report construction diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Directory) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}
		d.logger = logger
		return nil
	}
}

// New builds a Directory from a code table, preserving its order. Rows with
// a code outside one or two characters or a name shorter than three
// characters are kept but flagged; duplicate names and codes are flagged by
// the health check that runs as part of construction.
func New(defs []PlaceDef, opts ...Option) (*Directory, error) {
	d := &Directory{
		Places: make([]*Place, 0, len(defs)),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	for _, def := range defs {
		if len(def.Code) == 0 || len(def.Code) > 2 {
			d.report(core.Diagnostic{
				Kind:    core.DiagBadCode,
				Subject: def.Name,
				Detail:  fmt.Sprintf("code %q is not one or two characters", def.Code),
			})
		}
		if len(def.Name) < 3 {
			d.report(core.Diagnostic{
				Kind:    core.DiagShortPlaceName,
				Subject: def.Name,
				Detail:  fmt.Sprintf("name shorter than three characters for code %q", def.Code),
			})
		}
		d.Places = append(d.Places, NewPlace(def.Name, def.Code))
	}

	d.healthCheck()

	return d, nil
}

var defaultDirectory = sync.OnceValue(func() *Directory {
	d, err := New(DefaultPlaces)
	if err != nil {
		panic(fmt.Sprintf("gazetteer: building default directory: %v", err))
	}
	return d
})

// Default returns the shared Directory built from DefaultPlaces.
func Default() *Directory {
	return defaultDirectory()
}

func (d *Directory) report(diag core.Diagnostic) {
	d.diagnostics = append(d.diagnostics, diag)
	d.logger.Warn("place directory diagnostic",
		"kind", diag.Kind.String(),
		"subject", diag.Subject,
		"detail", diag.Detail)
}

// healthCheck flags names and codes that appear more than once, each one
// reported a single time.
func (d *Directory) healthCheck() {
	seenNames := make(map[string]int, len(d.Places))
	seenCodes := make(map[string]int, len(d.Places))
	for _, place := range d.Places {
		seenNames[place.Name]++
		seenCodes[place.Code]++
	}

	flaggedNames := make(map[string]bool)
	flaggedCodes := make(map[string]bool)
	for _, place := range d.Places {
		if seenNames[place.Name] > 1 && !flaggedNames[place.Name] {
			flaggedNames[place.Name] = true
			d.report(core.Diagnostic{
				Kind:    core.DiagDuplicateName,
				Subject: place.Name,
				Detail:  fmt.Sprintf("appears %d times", seenNames[place.Name]),
			})
		}
		if seenCodes[place.Code] > 1 && !flaggedCodes[place.Code] {
			flaggedCodes[place.Code] = true
			d.report(core.Diagnostic{
				Kind:    core.DiagDuplicateCode,
				Subject: place.Code,
				Detail:  fmt.Sprintf("appears %d times", seenCodes[place.Code]),
			})
		}
	}
}

// HealthCheck returns the diagnostics collected while building the
// directory.
func (d *Directory) HealthCheck() []core.Diagnostic {
	out := make([]core.Diagnostic, len(d.diagnostics))
	copy(out, d.diagnostics)
	return out
}

// FindByCode returns every place whose code equals code, in directory
// order.
func (d *Directory) FindByCode(code string) []*Place {
	var found []*Place
	for _, place := range d.Places {
		if place.Code == code {
			found = append(found, place)
		}
	}
	return found
}

// FindByName returns every place whose canonical name equals name, in
// directory order.
func (d *Directory) FindByName(name string) []*Place {
	var found []*Place
	for _, place := range d.Places {
		if place.Name == name {
			found = append(found, place)
		}
	}
	return found
}

// Search returns the places matching query under Place.Match. With split,
// the query is broken on "/" and every fragment longer than two characters
// is searched independently; results come back fragment-major, in directory
// order within a fragment, and a place matched by two fragments appears
// twice.
func (d *Directory) Search(query string, split, aliasing, exactMatch bool) ([]*Place, error) {
	fragments := []string{query}
	if split {
		fragments = fragments[:0]
		for _, part := range strings.Split(query, "/") {
			if len(part) > 2 {
				fragments = append(fragments, part)
			}
		}
	}

	var found []*Place
	for _, fragment := range fragments {
		for _, place := range d.Places {
			ok, err := place.Match(fragment, aliasing, exactMatch)
			if err != nil {
				return nil, err
			}
			if ok {
				found = append(found, place)
			}
		}
	}

	return found, nil
}

// EditSearch returns the places at minimal edit distance from query,
// provided that distance is below half the query length. Too-distant
// queries return no places; either way the second result is the distance
// the caller would have to beat, capped at len(query)/2.
func (d *Directory) EditSearch(query string, aliasing bool) ([]*Place, int) {
	if len(d.Places) == 0 {
		return nil, len(query) / 2
	}

	distances := make([]int, len(d.Places))
	best := -1
	for i, place := range d.Places {
		distances[i] = place.EditDistance(query, aliasing)
		if best < 0 || distances[i] < best {
			best = distances[i]
		}
	}

	if float64(best) >= float64(len(query))/2 {
		return nil, len(query) / 2
	}

	var found []*Place
	for i, place := range d.Places {
		if distances[i] == best {
			found = append(found, place)
		}
	}
	return found, best
}
