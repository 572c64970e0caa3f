// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rdb defines a backend-agnostic contract for running parameterized
// queries and mutations against relational data sources.
//
// The package has three layers:
//
//   - DataType, a closed tagged union of primitive and semantic value kinds
//     (signed/unsigned integers up to 128 bits, floats, booleans, strings,
//     bytes and timestamps) with exact-match typed extraction via Value.
//   - DataRecord and DataRows, the row and result-set containers produced by
//     a query. A NULL cell is a nil *DataType.
//   - QueryHandler, the lifecycle contract implemented by each backend
//     (Connect, Query, Mutate, Close), and the Error taxonomy it reports.
//
// Streaming and early termination:
//
// Query accepts a FetchMore predicate that is invoked once per stream event
// (every metadata arrival and every row arrival). Returning false stops the
// stream right after that event and the records gathered so far are returned
// without error:
//
//	limit := 10
//	rows, err := h.Query(ctx, "SELECT * FROM orders WHERE region = @p1",
//	    []rdb.DataType{rdb.String("EMEA")},
//	    func(_ []string, rec *rdb.DataRecord) bool {
//	        if rec != nil {
//	            limit--
//	        }
//	        return limit > 0
//	    })
//
// Handlers are not safe for concurrent use. Callers serialize access or use
// one handler per unit of work.
package rdb
