// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateRecord validates a raw record according to domain rules.
//
// Validation rules:
//   - the record must not be nil
//   - the "id" key must be present
//   - the "long" key must be present
//
// NOT validated (recovered as diagnostics by the dataset layer):
//   - id/long values of non-string type (coerced, reported)
//   - uniqueness of id or long across a dataset
func ValidateRecord(record Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}
	if _, ok := record["id"]; !ok {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrMissingID)
	}
	if _, ok := record["long"]; !ok {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrMissingLong)
	}
	return nil
}

// ValidateKind validates that a Kind has a valid value.
func ValidateKind(kind Kind) error {
	if kind != KindAntigen && kind != KindSerum {
		return fmt.Errorf("%w: value %d", ErrInvalidKind, kind)
	}
	return nil
}

// StringField returns record[key] rendered as a string and whether the
// underlying value already was one. Non-string values are formatted with
// fmt.Sprint so dirty data keeps flowing while the caller records a
// diagnostic.
func StringField(record Record, key string) (string, bool) {
	value, ok := record[key]
	if !ok {
		return "", false
	}
	if s, ok := value.(string); ok {
		return s, true
	}
	return fmt.Sprint(value), false
}
