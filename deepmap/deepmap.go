package deepmap

import (
	"reflect"
	"regexp"
	"sort"
	"strings"
)

// KeyValue is one FindByKey hit: the matched key and the value bound to it.
type KeyValue struct {
	Key   string
	Value any
}

// matcher unifies literal and regexp string comparison. The regexp form
// uses unanchored search; the literal form uses equality.
type matcher struct {
	re         *regexp.Regexp
	literal    string
	ignoreCase bool
}

func newMatcher(target string, ignoreCase, asRegexp bool) (*matcher, error) {
	if !asRegexp {
		return &matcher{literal: target, ignoreCase: ignoreCase}, nil
	}
	expr := target
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &matcher{re: re}, nil
}

func (m *matcher) matches(s string) bool {
	if m.re != nil {
		return m.re.MatchString(s)
	}
	if m.ignoreCase {
		return strings.EqualFold(m.literal, s)
	}
	return m.literal == s
}

// sortedKeys returns the structure's keys in sorted order. Go maps iterate
// in random order; sorting keeps search results and pre-order traversal
// deterministic.
func sortedKeys(structure map[string]any) []string {
	keys := make([]string, 0, len(structure))
	for key := range structure {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ContainsValue reports whether target occurs as a string value anywhere in
// the nested structure. Values that are lists are scanned element-wise;
// values (or list elements) that are mappings are searched recursively.
// When asRegexp is set the target is compiled once and matched with an
// unanchored search; a target that fails to compile is an error.
func ContainsValue(structure map[string]any, target string, ignoreCase, asRegexp bool) (bool, error) {
	m, err := newMatcher(target, ignoreCase, asRegexp)
	if err != nil {
		return false, err
	}
	return containsValue(structure, m), nil
}

func containsValue(structure map[string]any, m *matcher) bool {
	for _, key := range sortedKeys(structure) {
		values, ok := structure[key].([]any)
		if !ok {
			values = []any{structure[key]}
		}

		for _, value := range values {
			switch v := value.(type) {
			case map[string]any:
				if containsValue(v, m) {
					return true
				}
			case string:
				if m.matches(v) {
					return true
				}
			}
		}
	}
	return false
}

// FindByKey collects every (key, value) pair in the nested structure whose
// key matches target under the same comparison rules as ContainsValue. All
// matches are returned, in pre-order: a matching key is reported before its
// value is descended into.
func FindByKey(structure map[string]any, target string, ignoreCase, asRegexp bool) ([]KeyValue, error) {
	m, err := newMatcher(target, ignoreCase, asRegexp)
	if err != nil {
		return nil, err
	}
	return findByKey(structure, m), nil
}

func findByKey(structure map[string]any, m *matcher) []KeyValue {
	var found []KeyValue
	for _, key := range sortedKeys(structure) {
		value := structure[key]
		if m.matches(key) {
			found = append(found, KeyValue{Key: key, Value: value})
		}
		if nested, ok := value.(map[string]any); ok {
			found = append(found, findByKey(nested, m)...)
		}
	}
	return found
}

// DeepEqual tests structural equality between two values. Mappings are
// equal iff they have the same key set and all corresponding values are
// deep-equal; strings are atomic scalars, never iterated; other sequences
// compare by length and element order; everything else by value equality.
func DeepEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)

	// Strings first: they are also "sequences" but must compare atomically.
	if va.Kind() == reflect.String || vb.Kind() == reflect.String {
		return va.Kind() == vb.Kind() && va.String() == vb.String()
	}

	switch va.Kind() {
	case reflect.Map:
		if vb.Kind() != reflect.Map || va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			bv := vb.MapIndex(iter.Key())
			if !bv.IsValid() {
				return false
			}
			if !DeepEqual(iter.Value().Interface(), bv.Interface()) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Array:
		if vb.Kind() != reflect.Slice && vb.Kind() != reflect.Array {
			return false
		}
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !DeepEqual(va.Index(i).Interface(), vb.Index(i).Interface()) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}
