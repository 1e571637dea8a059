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


// Package titer parses assay titer tables and converts their thresholded
// string values to numbers.
//
// A raw titer is a string like "40", "<20", ">5120" or "20/40". Convert
// turns it into a single integer: thresholded values are halved or
// doubled past the threshold, paired values become their geometric mean.
//
// A Table binds a results record (antigen ids, serum ids and a titer
// matrix) to the antigen and serum datasets restricted to those ids, and
// keeps per-cell raw, numeric and threshold-flag lookups keyed by the
// (antigen id, serum id) pair so reordering rows and columns cannot
// scramble the data.
package titer
