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


// Package dataset resolves free-text queries to antigen and serum records.
//
// An Entry wraps one raw record, derives a short display name by
// abbreviating place names through a gazetteer directory, and scores
// queries against the record with a staged fuzzy match: split the query,
// gate on amino-acid mutation tokens, optionally recover a place name the
// query only hints at, then count the fragments found anywhere in the
// record.
//
// A Dataset is an ordered collection of entries over records of one kind.
// It answers exact-style lookups (GetEntry, DeepSearch) and the escalating
// AliasedSearch, which runs a plain scoring pass and falls back to a
// refined pass before giving up. Ambiguity is an ordinary outcome: every
// entry tied at the winning score is returned.
package dataset
