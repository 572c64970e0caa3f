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
	"database/sql/driver"
	"errors"
	"io"
	"sync"

	"github.com/microsoft/go-mssqldb/msdsn"
)

// fakeColumn describes one column of a scripted result set.
type fakeColumn struct {
	name     string
	typeName string
	// scale is reported only when hasScale is set
	scale    int64
	hasScale bool
}

type fakeResultSet struct {
	columns []fakeColumn
	rows    [][]driver.Value
}

type fakeCall struct {
	query string
	args  []any
}

// fakeServer scripts responses for a database/sql driver that never touches
// the network. Results are keyed by statement text.
type fakeServer struct {
	mu sync.Mutex

	results  map[string][]fakeResultSet
	affected map[string]int64

	connectErr error
	dsn        msdsn.Config
	connects   int
	calls      []fakeCall
	nextCalls  int
	closed     int
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		results:  map[string][]fakeResultSet{},
		affected: map[string]int64{},
	}
}

// install points h at the fake server instead of a real SQL Server.
func (s *fakeServer) install(h *Handler) {
	h.newConnector = func(cfg msdsn.Config) (driver.Connector, error) {
		s.mu.Lock()
		s.dsn = cfg
		s.mu.Unlock()
		return &fakeConnector{srv: s}, nil
	}
}

func (s *fakeServer) record(query string, args []driver.NamedValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a.Value
	}
	s.calls = append(s.calls, fakeCall{query: query, args: vals})
}

func (s *fakeServer) lastCall() fakeCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return fakeCall{}
	}
	return s.calls[len(s.calls)-1]
}

type fakeConnector struct {
	srv *fakeServer
}

func (c *fakeConnector) Connect(ctx context.Context) (driver.Conn, error) {
	c.srv.mu.Lock()
	defer c.srv.mu.Unlock()
	if c.srv.connectErr != nil {
		return nil, c.srv.connectErr
	}
	c.srv.connects++
	return &fakeConn{srv: c.srv}, nil
}

func (c *fakeConnector) Driver() driver.Driver { return fakeDriver{} }

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("fake driver only supports connectors")
}

type fakeConn struct {
	srv *fakeServer
}

var (
	_ driver.QueryerContext    = (*fakeConn)(nil)
	_ driver.ExecerContext     = (*fakeConn)(nil)
	_ driver.NamedValueChecker = (*fakeConn)(nil)
)

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *fakeConn) Close() error {
	c.srv.mu.Lock()
	defer c.srv.mu.Unlock()
	c.srv.closed++
	return nil
}

// CheckNamedValue accepts every argument unchanged so tests observe the exact
// Go types the handler bound.
func (c *fakeConn) CheckNamedValue(*driver.NamedValue) error { return nil }

func (c *fakeConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.srv.record(query, args)
	c.srv.mu.Lock()
	sets, ok := c.srv.results[query]
	c.srv.mu.Unlock()
	if !ok {
		return nil, errors.New("unknown statement: " + query)
	}
	return &fakeRows{srv: c.srv, sets: sets}, nil
}

func (c *fakeConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.srv.record(query, args)
	c.srv.mu.Lock()
	n, ok := c.srv.affected[query]
	c.srv.mu.Unlock()
	if !ok {
		return nil, errors.New("unknown statement: " + query)
	}
	return driver.RowsAffected(n), nil
}

type fakeRows struct {
	srv  *fakeServer
	sets []fakeResultSet
	set  int
	row  int
}

var (
	_ driver.RowsNextResultSet              = (*fakeRows)(nil)
	_ driver.RowsColumnTypeDatabaseTypeName = (*fakeRows)(nil)
	_ driver.RowsColumnTypePrecisionScale   = (*fakeRows)(nil)
)

func (r *fakeRows) current() fakeResultSet {
	if r.set < len(r.sets) {
		return r.sets[r.set]
	}
	return fakeResultSet{}
}

func (r *fakeRows) Columns() []string {
	cols := r.current().columns
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

func (r *fakeRows) ColumnTypeDatabaseTypeName(index int) string {
	return r.current().columns[index].typeName
}

func (r *fakeRows) ColumnTypePrecisionScale(index int) (precision, scale int64, ok bool) {
	c := r.current().columns[index]
	return 0, c.scale, c.hasScale
}

func (r *fakeRows) Close() error { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	r.srv.mu.Lock()
	r.srv.nextCalls++
	r.srv.mu.Unlock()

	set := r.current()
	if r.row >= len(set.rows) {
		return io.EOF
	}
	copy(dest, set.rows[r.row])
	r.row++
	return nil
}

func (r *fakeRows) HasNextResultSet() bool { return r.set+1 < len(r.sets) }

func (r *fakeRows) NextResultSet() error {
	if !r.HasNextResultSet() {
		return io.EOF
	}
	r.set++
	r.row = 0
	return nil
}
