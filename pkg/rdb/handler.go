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
package rdb

import "context"

// FetchMore is invoked once per stream event. columnMeta is the latest
// metadata observed so far (nil before the first metadata event) and record
// is the row just produced, or nil for a metadata event. Returning false stops
// the stream after the current event.
//
// FetchMore runs synchronously inside the read loop and must not block.
type FetchMore func(columnMeta []string, record *DataRecord) bool

// DefaultFetchMore always continues, yielding the full result set.
func DefaultFetchMore(_ []string, _ *DataRecord) bool { return true }

// QueryResult is the outcome of a mutation.
type QueryResult interface {
	AffectedRows() uint64
}

// AffectedRows is the QueryResult returned by the bundled backends.
type AffectedRows uint64

// AffectedRows returns the protocol-reported row count.
func (a AffectedRows) AffectedRows() uint64 { return uint64(a) }

// QueryHandler is the lifecycle contract every backend implements. Each
// backend supplies its own connection configuration type and a constructor
// that never touches the network.
//
// State machine: Unconnected -> (Connect) -> Connected -> (Close) -> Closed.
//   - Query and Mutate require Connected and fail with KindNotInitialized otherwise.
//   - A failed Connect leaves the handler Unconnected; there is no retry.
//   - Close on a handler that never connected, or a second Close, fails with
//     KindInvalidCall. Closed is terminal: Connect fails with KindInvalidCall.
//
// Implementations hold at most one connection and are not safe for
// concurrent use.
type QueryHandler interface {
	// Connect establishes the connection and performs the protocol handshake.
	Connect(ctx context.Context) error

	// Query runs a statement that may yield metadata and row events. binds are
	// substituted positionally. fetchMore may be nil, meaning DefaultFetchMore.
	// When fetchMore stops the stream the records gathered so far are
	// returned without error.
	Query(ctx context.Context, query string, binds []DataType, fetchMore FetchMore) (*DataRows, error)

	// Mutate runs a statement that yields no rows and reports the affected row count.
	Mutate(ctx context.Context, query string, binds []DataType) (QueryResult, error)

	// Close releases the connection. The handler cannot be reused afterwards.
	Close(ctx context.Context) error
}
