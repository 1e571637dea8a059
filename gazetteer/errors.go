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


package gazetteer

import "errors"

var (
	// ErrInvalidQuery indicates a search query that does not compile as a
	// regular expression.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidOption indicates a construction option with an unusable
	// value.
	ErrInvalidOption = errors.New("invalid option")
)
