package dataset

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// mutationPattern recognizes amino-acid substitution tokens such as H275Y:
// source residue, site number, destination residue.
var mutationPattern = regexp.MustCompile(`[ARNDCEQGHILKMFPSTWYV]\d{2,3}[ARNDCEQGHILKMFPSTWYV]`)

// ScoreConfig tunes the refined stage of AliasScore.
type ScoreConfig struct {
	// FalconToken is a query marker that stands in for FalconPlaces when
	// no fragment names a place outright. Empty disables the fallback.
	FalconToken string

	// FalconPlaces are the place names substituted for FalconToken.
	FalconPlaces []string

	// EditRatioMax is the largest accepted edit distance per query
	// character when recovering a place name by edit-distance search.
	EditRatioMax float64
}

// DefaultScoreConfig returns the stock configuration: the GYRF marker
// expands to the gyrfalcon isolates' naming pair and typo recovery accepts
// one edit per four characters.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		FalconToken:  "GYRF",
		FalconPlaces: []string{"GYRFALCON", "WASHINGTON"},
		EditRatioMax: 0.25,
	}
}

// ScoreOptions controls one AliasScore call. The zero value is the usual
// mode: case-insensitive regexp comparison, plain (unrefined) scoring,
// mutation gate on.
type ScoreOptions struct {
	// CaseSensitive compares fragments without folding case.
	CaseSensitive bool

	// Literal compares fragments by string equality instead of compiling
	// them as regular expressions.
	Literal bool

	// Refined enables place-name recovery before scoring.
	Refined bool

	// IgnoreMutations skips the mutation gate.
	IgnoreMutations bool
}

// AliasScore counts how many fragments of query occur in the entry's
// record. The query is split on "/"; unless IgnoreMutations, a mismatch
// between the mutation tokens of the query and those of the long name
// scores zero outright. In refined mode, when no fragment names a place
// the directory knows, the score recovers one from the falcon marker or by
// edit-distance search, and the recovered names join the fragments. Short
// all-purpose fragments (at most 4 characters with no more than 3 letters
// and 3 digits) are ignored as noise.
func (e *Entry) AliasScore(query string, opts ScoreOptions) (int, error) {
	fragments := strings.Split(query, "/")

	if !opts.IgnoreMutations && !e.mutationsMatch(fragments) {
		return 0, nil
	}

	searchNames := fragments
	if opts.Refined {
		recovered, err := e.recoverPlaceNames(fragments)
		if err != nil {
			return 0, err
		}
		searchNames = append(splitSeparators(query), recovered...)
	}

	matches := 0
	for _, name := range searchNames {
		if !significantFragment(name) {
			continue
		}
		found, err := e.DeepSearch(name, !opts.CaseSensitive, !opts.Literal)
		if err != nil {
			return 0, err
		}
		if found {
			matches++
		}
	}

	return matches, nil
}

// mutationsMatch compares the mutation-token sets of the query fragments
// and of the entry's long name.
func (e *Entry) mutationsMatch(fragments []string) bool {
	queryMuts := make(map[string]bool)
	for _, fragment := range fragments {
		for _, mut := range mutationPattern.FindAllString(fragment, -1) {
			queryMuts[mut] = true
		}
	}

	longMuts := make(map[string]bool)
	for _, fragment := range splitSeparators(e.Long) {
		for _, mut := range mutationPattern.FindAllString(fragment, -1) {
			longMuts[mut] = true
		}
	}

	if len(queryMuts) != len(longMuts) {
		return false
	}
	for mut := range queryMuts {
		if !longMuts[mut] {
			return false
		}
	}
	return true
}

// recoverPlaceNames returns place names the query only hints at. When some
// fragment already matches the directory nothing is recovered: the plain
// fragments carry the place. Otherwise the falcon marker is tried first,
// then a per-fragment edit-distance search accepted only when it produced
// places within the configured edit ratio.
func (e *Entry) recoverPlaceNames(fragments []string) ([]string, error) {
	for _, fragment := range fragments {
		found, err := e.directory.Search(fragment, false, false, false)
		if err != nil {
			return nil, err
		}
		if len(found) > 0 {
			return nil, nil
		}
	}

	if e.cfg.FalconToken != "" {
		for _, fragment := range fragments {
			if strings.Contains(fragment, e.cfg.FalconToken) {
				return e.cfg.FalconPlaces, nil
			}
		}
	}

	for _, fragment := range fragments {
		if len(fragment) == 0 {
			continue
		}
		places, dist := e.directory.EditSearch(fragment, true)
		if len(places) == 0 {
			continue
		}
		if float64(dist)/float64(len(fragment)) <= e.cfg.EditRatioMax {
			names := make([]string, len(places))
			for i, place := range places {
				names[i] = place.Name
			}
			return names, nil
		}
	}

	return nil, nil
}

// splitSeparators breaks s on "/", "_" and "-".
func splitSeparators(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '_' || r == '-'
	})
}

// significantFragment filters out fragments too short and mixed to mean
// anything: years, place names and mutation tokens all pass, segments like
// "A" or "H3N2" do not.
func significantFragment(name string) bool {
	letters, digits := 0, 0
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters++
		}
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return utf8.RuneCountInString(name) > 4 || letters > 3 || digits > 3
}
