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
package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teradata-labs/tabularuq/pkg/rdb"
	"github.com/teradata-labs/tabularuq/pkg/rdb/sqlserver"
)

const sqlServerTOML = `
driver = "sqlserver"

[sqlserver]
ado_string = "app name=reports"
host = "db.internal"
port = 14330
database = "sales"
username = "reporter"
password = "secret"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDataSource_TOML(t *testing.T) {
	path := writeFile(t, "datasource.toml", sqlServerTOML)

	inform, err := LoadDataSource(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlserver", inform.Driver)
	require.NotNil(t, inform.SQLServer)
	assert.Equal(t, sqlserver.Config{
		ADOString: "app name=reports",
		Host:      "db.internal",
		Port:      14330,
		Database:  "sales",
		Username:  "reporter",
		Password:  "secret",
	}, *inform.SQLServer)
}

func TestLoadDataSource_YAMLWithoutPort(t *testing.T) {
	path := writeFile(t, "datasource.yaml", `
driver: sqlserver
sqlserver:
  host: localhost
  database: master
  username: sa
  password: pw
`)

	inform, err := LoadDataSource(path)
	require.NoError(t, err)
	require.NotNil(t, inform.SQLServer)
	assert.Equal(t, uint16(0), inform.SQLServer.Port)
	assert.Equal(t, uint16(1433), inform.SQLServer.EffectivePort())
}

func TestLoadDataSource_Errors(t *testing.T) {
	_, err := LoadDataSource(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := writeFile(t, "broken.toml", "driver = \n[sqlserver")
	_, err = LoadDataSource(bad)
	assert.Error(t, err)
}

func TestOpen_SQLServer(t *testing.T) {
	path := writeFile(t, "datasource.toml", sqlServerTOML)

	h, err := Open(path)
	require.NoError(t, err)
	ss, ok := h.(*sqlserver.Handler)
	require.True(t, ok, "got %T", h)
	assert.Equal(t, "db.internal", ss.Config().Host)

	_, err = h.Query(context.Background(), "SELECT 1", nil, nil)
	assert.ErrorIs(t, err, rdb.ErrNotInitialized, "handlers are returned unconnected")
}

func TestNew_DriverNameIsCaseInsensitive(t *testing.T) {
	h, err := New(DataSourceInform{Driver: " SQLServer ", SQLServer: &sqlserver.Config{Host: "h"}})
	require.NoError(t, err)
	assert.IsType(t, &sqlserver.Handler{}, h)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	h, err := New(DataSourceInform{Driver: "oracle"}, WithLogger(zap.New(core)))
	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
	assert.Equal(t, 1, logs.FilterMessage("driver is not supported").Len())
}

func TestNew_MissingSection(t *testing.T) {
	_, err := New(DataSourceInform{Driver: DriverSQLServer})
	assert.ErrorIs(t, err, ErrMissingBackendConfig)
}

func TestHandlerFromPath(t *testing.T) {
	h, ok := HandlerFromPath(writeFile(t, "datasource.toml", sqlServerTOML))
	assert.True(t, ok)
	assert.NotNil(t, h)

	h, ok = HandlerFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	assert.False(t, ok)
	assert.Nil(t, h)

	unsupported := writeFile(t, "pg.toml", "driver = \"postgres\"\n")
	_, ok = HandlerFromPath(unsupported)
	assert.False(t, ok)
}

func TestHandlerFromInform(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	h, ok := HandlerFromInform(DataSourceInform{
		Driver:    DriverSQLServer,
		SQLServer: &sqlserver.Config{Host: "localhost"},
	}, WithLogger(logger))
	assert.True(t, ok)
	assert.NotNil(t, h)

	h, ok = HandlerFromInform(DataSourceInform{Driver: "mysql"}, WithLogger(logger))
	assert.False(t, ok)
	assert.Nil(t, h)
	assert.Equal(t, 1, logs.FilterMessage("no query handler for data source").Len())
}
