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
	"fmt"
	"net"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/msdsn"
)

// noDelayDialer opens plain TCP connections with Nagle's algorithm disabled.
type noDelayDialer struct {
	dialer net.Dialer
}

var _ mssql.Dialer = (*noDelayDialer)(nil)

func (d *noDelayDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	conn, err := d.dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		if err := tcp.SetNoDelay(true); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to set TCP_NODELAY on %s: %w", addr, err)
		}
	}
	return conn, nil
}

// connectorFunc turns a driver configuration into a database/sql connector.
type connectorFunc func(cfg msdsn.Config) (driver.Connector, error)

func newMSSQLConnector(cfg msdsn.Config) (driver.Connector, error) {
	connector := mssql.NewConnectorConfig(cfg)
	connector.Dialer = &noDelayDialer{}
	return connector, nil
}
