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


// Package deepmap provides recursive search and equality over nested
// key-value structures as decoded from JSON.
//
// Three operations are exposed:
//   - ContainsValue reports whether a string value occurs anywhere in a
//     nested mapping, by literal comparison or regexp search.
//   - FindByKey collects every (key, value) pair whose key matches, in
//     pre-order.
//   - DeepEqual tests structural equality, treating strings as atomic
//     scalars and sequences element-wise.
//
// Traversal visits map keys in sorted order so results are deterministic.
package deepmap
