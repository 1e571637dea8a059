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

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates a raw record failed validation.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrMissingID indicates a record without the required "id" field.
	ErrMissingID = errors.New(`record must contain the key "id"`)

	// ErrMissingLong indicates a record without the required "long" field.
	ErrMissingLong = errors.New(`record must contain the key "long"`)

	// ErrInvalidKind indicates an invalid Kind value.
	ErrInvalidKind = errors.New("invalid kind")
)
