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


// Package gazetteer provides the place directory used to recognize
// geographic names inside strain descriptors.
//
// Each Place carries a canonical upper-cased name, a short code, and a set
// of separator-variant aliases generated once at construction: a place
// named HONG-KONG also answers to HONGKONG, HONG_KONG, HONG KONG and
// HONG/KONG. Queries are aliased the same way, so HONG KONG finds a place
// recorded as HONGKONG.
//
// The Directory supports substring/regexp search over all places and
// edit-distance search with a relative threshold, so a query with a typo
// (HONK KONG) still finds the place it meant. A Directory is built once and
// is read-only afterwards; concurrent readers are safe by construction.
package gazetteer
