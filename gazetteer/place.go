package gazetteer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agext/levenshtein"
)

// separators are the characters that vary between spellings of the same
// place name in strain descriptors.
var separators = []string{"-", "_", " ", "/"}

var editParams = levenshtein.NewParams()

// GenerateAliases returns the separator variants of name. The first alias
// is always the upper-cased name itself; for every separator present in it,
// one alias per alternative separator is added, plus one with the separator
// removed. Only first-order variants are generated: a name containing two
// distinct separators does not get the variant with both replaced.
func GenerateAliases(name string) []string {
	aliases := []string{strings.ToUpper(name)}

	for i, first := range separators {
		rest := append(append([]string{}, separators[i+1:]...), "")
		for _, second := range rest {
			if strings.Contains(aliases[0], first) {
				aliases = append(aliases, strings.ReplaceAll(aliases[0], first, second))
			}
		}
	}

	return aliases
}

// Place is one entry of the directory: a canonical upper-cased name, its
// short code, and the precomputed separator aliases of the name.
type Place struct {
	Name    string
	Code    string
	Aliases []string
}

// NewPlace builds a Place from a name and code, upper-casing the name and
// generating its aliases.
func NewPlace(name, code string) *Place {
	return &Place{
		Name:    strings.ToUpper(name),
		Code:    code,
		Aliases: GenerateAliases(name),
	}
}

// Match reports whether query names this place. With aliasing, every alias
// of the query is tried against every alias of the place; without it, the
// bare query is tried against the canonical name only. Each query alias is
// compiled as a case-insensitive regular expression and searched unanchored
// unless exactMatch anchors it to the whole alias. A query that fails to
// compile is an error.
func (p *Place) Match(query string, aliasing, exactMatch bool) (bool, error) {
	queryAliases := []string{query}
	placeAliases := []string{p.Name}
	if aliasing {
		queryAliases = GenerateAliases(query)
		placeAliases = p.Aliases
	}

	for _, alias := range queryAliases {
		expr := alias
		if exactMatch {
			expr = "^" + expr + "$"
		}
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
		}
		for _, candidate := range placeAliases {
			if re.MatchString(candidate) {
				return true, nil
			}
		}
	}

	return false, nil
}

// EditDistance returns the smallest edit distance between query and any
// alias of the place, or the distance to the canonical name alone when
// aliasing is off.
func (p *Place) EditDistance(query string, aliasing bool) int {
	candidates := []string{p.Name}
	if aliasing {
		candidates = p.Aliases
	}

	best := -1
	for _, candidate := range candidates {
		d := levenshtein.Distance(candidate, query, editParams)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

func (p *Place) String() string {
	return fmt.Sprintf("%s:%s", p.Code, p.Name)
}
