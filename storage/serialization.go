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


package storage

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/poiesic/seromatch/core"
)

// MarshalRecords serializes a record list to its wire JSON form. The same
// bytes feed the content fingerprint, so records round-trip exactly as
// imported.
func MarshalRecords(records []core.Record) ([]byte, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalRecords deserializes a record list from bytes.
func UnmarshalRecords(data []byte) ([]core.Record, error) {
	var records []core.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return records, nil
}

// MarshalRecordSetInfo serializes set metadata to bytes.
func MarshalRecordSetInfo(info *RecordSetInfo) ([]byte, error) {
	data, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalRecordSetInfo deserializes set metadata from bytes.
func UnmarshalRecordSetInfo(data []byte) (*RecordSetInfo, error) {
	var info RecordSetInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &info, nil
}
