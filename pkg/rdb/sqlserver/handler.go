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
package sqlserver

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/teradata-labs/tabularuq/pkg/rdb"
)

// Handler is a single-connection SQL Server QueryHandler.
//
// A Handler is not safe for concurrent use. It moves from unconnected to
// connected on a successful Connect, and to closed on Close. A closed
// handler rejects every further call.
type Handler struct {
	config       Config
	logger       *zap.Logger
	newConnector connectorFunc

	db     *sql.DB
	conn   *sql.Conn
	closed bool
}

var _ rdb.QueryHandler = (*Handler)(nil)

// FromConfig creates an unconnected handler. A nil logger disables logging.
func FromConfig(config Config, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		config:       config,
		logger:       logger.With(zap.String("backend", "sqlserver")),
		newConnector: newMSSQLConnector,
	}
}

// Config returns the handler's connection settings.
func (h *Handler) Config() Config { return h.config }

// Connect opens the TCP connection and completes the login handshake.
// On failure the handler stays unconnected and Connect may be retried.
func (h *Handler) Connect(ctx context.Context) error {
	if h.closed {
		return rdb.InvalidCall("cannot connect a closed handler")
	}
	if h.conn != nil {
		return rdb.InvalidCall("handler is already connected")
	}

	dsn, err := h.config.dsn()
	if err != nil {
		return rdb.Unknown("invalid connection configuration", err)
	}
	connector, err := h.newConnector(dsn)
	if err != nil {
		return rdb.Unknown("failed to create connector", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return rdb.Unknown("failed to connect to "+h.config.String(), err)
	}

	h.db = db
	h.conn = conn
	h.logger.Info("connected", zap.Stringer("target", h.config))
	return nil
}

// Query executes query and streams its results through fetchMore. A metadata
// event (record == nil) is emitted at the start of each result set, then one
// event per row. Returning false stops the stream; the event that returned
// false is still part of the result. A nil fetchMore collects everything.
//
// The returned column metadata is the last metadata seen, so for a
// multi-statement batch it describes the final result set.
func (h *Handler) Query(ctx context.Context, query string, binds []rdb.DataType, fetchMore rdb.FetchMore) (*rdb.DataRows, error) {
	if h.conn == nil {
		return nil, rdb.NotInitialized("client is not initialized")
	}
	if fetchMore == nil {
		fetchMore = rdb.DefaultFetchMore
	}

	h.logger.Debug("executing query", zap.Int("binds", len(binds)))
	rows, err := h.conn.QueryContext(ctx, query, bindArgs(binds, h.logger)...)
	if err != nil {
		return nil, rdb.Unknown("query failed", err)
	}
	// Closing drains any unread rows so the connection stays usable.
	defer func() { _ = rows.Close() }()

	var (
		columnMeta []string
		records    []rdb.DataRecord
	)
	for {
		columns, err := rows.ColumnTypes()
		if err != nil {
			return nil, rdb.Unknown("failed to read column metadata", err)
		}
		if len(columns) > 0 {
			columnMeta = make([]string, len(columns))
			for i, c := range columns {
				columnMeta[i] = c.Name()
			}
			if !fetchMore(columnMeta, nil) {
				return rdb.NewDataRows(columnMeta, records), nil
			}
		}

		for rows.Next() {
			rec, err := h.scanRecord(rows, columns)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
			if !fetchMore(columnMeta, &rec) {
				return rdb.NewDataRows(columnMeta, records), nil
			}
		}
		if err := rows.Err(); err != nil {
			return nil, rdb.Unknown("failed to read result set", err)
		}
		if !rows.NextResultSet() {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, rdb.Unknown("failed to advance result set", err)
	}

	return rdb.NewDataRows(columnMeta, records), nil
}

func (h *Handler) scanRecord(rows *sql.Rows, columns []*sql.ColumnType) (rdb.DataRecord, error) {
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return rdb.DataRecord{}, rdb.Unknown("failed to scan row", err)
	}

	cells := make([]*rdb.DataType, len(columns))
	for i, c := range columns {
		cell, err := decodeColumn(c.DatabaseTypeName(), columnScale(c), values[i])
		if err != nil {
			h.logger.Debug("column decoded as NULL",
				zap.String("column", c.Name()),
				zap.String("type", c.DatabaseTypeName()),
				zap.Error(err))
			continue
		}
		cells[i] = cell
	}
	return rdb.NewDataRecord(cells), nil
}

// columnScale reports the column's scale, falling back to the TIME default
// when the driver does not know it.
func columnScale(c *sql.ColumnType) int64 {
	if _, scale, ok := c.DecimalSize(); ok {
		return scale
	}
	return defaultTimeScale
}

// Mutate executes a statement and reports the total number of affected rows.
func (h *Handler) Mutate(ctx context.Context, query string, binds []rdb.DataType) (rdb.QueryResult, error) {
	if h.conn == nil {
		return nil, rdb.NotInitialized("client is not initialized")
	}

	h.logger.Debug("executing statement", zap.Int("binds", len(binds)))
	res, err := h.conn.ExecContext(ctx, query, bindArgs(binds, h.logger)...)
	if err != nil {
		return nil, rdb.Unknown("mutate failed", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, rdb.Unknown("failed to read affected rows", err)
	}
	if n < 0 {
		n = 0
	}
	return rdb.AffectedRows(uint64(n)), nil
}

// Close releases the connection. The handler is unusable afterwards even if
// Close returns an error.
func (h *Handler) Close(ctx context.Context) error {
	if h.closed {
		return rdb.InvalidCall("handler is already closed")
	}
	h.closed = true

	if h.conn == nil {
		return rdb.InvalidCall("client cannot be closed, it was never connected")
	}

	err := errors.Join(h.conn.Close(), h.db.Close())
	h.conn, h.db = nil, nil
	if err != nil {
		return rdb.Unknown("failed to close connection", err)
	}
	h.logger.Info("closed", zap.Stringer("target", h.config))
	return nil
}
