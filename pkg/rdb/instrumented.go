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

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const maxQueryPreview = 500

// InstrumentedHandler wraps any QueryHandler and logs every operation with
// its duration and outcome:
// - Connect and Close
// - Query with row, event and early-stop counts
// - Mutate with affected rows
//
// The wrapper is transparent; errors and results pass through untouched.
type InstrumentedHandler struct {
	// handler is the wrapped backend
	handler QueryHandler

	logger *zap.Logger
}

var _ QueryHandler = (*InstrumentedHandler)(nil)

// NewInstrumentedHandler wraps handler. A nil logger disables output.
func NewInstrumentedHandler(handler QueryHandler, logger *zap.Logger) *InstrumentedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstrumentedHandler{handler: handler, logger: logger}
}

// Unwrap returns the wrapped handler.
func (ih *InstrumentedHandler) Unwrap() QueryHandler { return ih.handler }

// Connect connects the wrapped handler.
func (ih *InstrumentedHandler) Connect(ctx context.Context) error {
	start := time.Now()
	err := ih.handler.Connect(ctx)
	if err != nil {
		ih.logger.Error("handler connect failed",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return err
	}
	ih.logger.Info("handler connected", zap.Duration("duration", time.Since(start)))
	return nil
}

// Query runs the statement and counts the events the wrapped handler emitted.
func (ih *InstrumentedHandler) Query(ctx context.Context, query string, binds []DataType, fetchMore FetchMore) (*DataRows, error) {
	if fetchMore == nil {
		fetchMore = DefaultFetchMore
	}

	start := time.Now()
	events := 0
	stopped := false
	counting := func(meta []string, rec *DataRecord) bool {
		events++
		more := fetchMore(meta, rec)
		if !more {
			stopped = true
		}
		return more
	}

	rows, err := ih.handler.Query(ctx, query, binds, counting)
	duration := time.Since(start)
	if err != nil {
		ih.logger.Error("query failed",
			zap.String("query", preview(query)),
			zap.Int("binds", len(binds)),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}

	ih.logger.Debug("query completed",
		zap.String("query", preview(query)),
		zap.Int("binds", len(binds)),
		zap.Int("events", events),
		zap.Int("rows", rows.Len()),
		zap.Bool("stopped_early", stopped),
		zap.Duration("duration", duration))
	return rows, nil
}

// Mutate runs the statement and logs the affected row count.
func (ih *InstrumentedHandler) Mutate(ctx context.Context, query string, binds []DataType) (QueryResult, error) {
	start := time.Now()
	result, err := ih.handler.Mutate(ctx, query, binds)
	duration := time.Since(start)
	if err != nil {
		ih.logger.Error("mutate failed",
			zap.String("query", preview(query)),
			zap.Int("binds", len(binds)),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}

	ih.logger.Debug("mutate completed",
		zap.String("query", preview(query)),
		zap.Uint64("affected_rows", result.AffectedRows()),
		zap.Duration("duration", duration))
	return result, nil
}

// Close closes the wrapped handler.
func (ih *InstrumentedHandler) Close(ctx context.Context) error {
	if err := ih.handler.Close(ctx); err != nil {
		ih.logger.Warn("handler close failed", zap.Error(err))
		return err
	}
	ih.logger.Info("handler closed")
	return nil
}

// preview truncates long statements so log lines stay bounded.
func preview(query string) string {
	if len(query) > maxQueryPreview {
		return query[:maxQueryPreview] + "..."
	}
	return query
}
