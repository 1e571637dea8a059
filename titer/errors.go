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


package titer

import "errors"

var (
	// ErrZeroTiter indicates a titer that converts to zero.
	ErrZeroTiter = errors.New("zero titer")

	// ErrNotNumeric indicates a titer value that cannot be converted to a
	// number.
	ErrNotNumeric = errors.New("titer is not numeric")

	// ErrInvalidResults indicates a results record missing its id lists or
	// titer matrix.
	ErrInvalidResults = errors.New("invalid results record")

	// ErrShapeMismatch indicates a titer matrix whose dimensions disagree
	// with the antigen and serum id lists.
	ErrShapeMismatch = errors.New("titer matrix shape mismatch")

	// ErrInvalidOption indicates a construction option with an unusable
	// value.
	ErrInvalidOption = errors.New("invalid option")
)
