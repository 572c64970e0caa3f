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

// Package factory builds rdb.QueryHandler values from data-source
// descriptions, either loaded from a file or constructed in code.
//
// A data-source file names a driver and carries a section for that driver's
// settings. TOML, YAML and JSON are accepted; the format follows the file
// extension:
//
//	driver = "sqlserver"
//
//	[sqlserver]
//	host = "db.internal"
//	port = 1433
//	database = "sales"
//	username = "reporter"
//	password = "secret"
package factory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/teradata-labs/tabularuq/pkg/rdb"
	"github.com/teradata-labs/tabularuq/pkg/rdb/sqlserver"
)

// DriverSQLServer selects the SQL Server backend.
const DriverSQLServer = "sqlserver"

var (
	// ErrUnsupportedDriver is returned when the driver has no backend.
	ErrUnsupportedDriver = errors.New("unsupported driver")

	// ErrMissingBackendConfig is returned when the section for the selected
	// driver is absent.
	ErrMissingBackendConfig = errors.New("missing backend configuration")
)

// DataSourceInform describes one data source.
type DataSourceInform struct {
	Driver    string            `mapstructure:"driver"`
	SQLServer *sqlserver.Config `mapstructure:"sqlserver"`
}

// Option configures handler construction.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger handed to the backend and used for diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LoadDataSource reads a data-source file.
func LoadDataSource(path string) (*DataSourceInform, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading data source file %s: %w", path, err)
	}

	var inform DataSourceInform
	if err := v.Unmarshal(&inform); err != nil {
		return nil, fmt.Errorf("failed to unmarshal data source file %s: %w", path, err)
	}
	return &inform, nil
}

// Open loads the data-source file at path and returns an unconnected handler
// for it.
func Open(path string, opts ...Option) (rdb.QueryHandler, error) {
	inform, err := LoadDataSource(path)
	if err != nil {
		return nil, err
	}
	return New(*inform, opts...)
}

// New returns an unconnected handler for inform.
func New(inform DataSourceInform, opts ...Option) (rdb.QueryHandler, error) {
	o := buildOptions(opts)

	switch driver := strings.ToLower(strings.TrimSpace(inform.Driver)); driver {
	case DriverSQLServer:
		if inform.SQLServer == nil {
			return nil, fmt.Errorf("%w: [%s] section is required", ErrMissingBackendConfig, DriverSQLServer)
		}
		return sqlserver.FromConfig(*inform.SQLServer, o.logger), nil
	default:
		o.logger.Warn("driver is not supported", zap.String("driver", inform.Driver))
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, inform.Driver)
	}
}

// HandlerFromPath is Open without the error detail: ok is false if the file
// cannot be read or decoded, or its driver is unsupported. The cause is logged.
//
// Deprecated: use Open, which reports why construction failed.
func HandlerFromPath(path string, opts ...Option) (handler rdb.QueryHandler, ok bool) {
	h, err := Open(path, opts...)
	if err != nil {
		buildOptions(opts).logger.Warn("no query handler for data source",
			zap.String("path", path), zap.Error(err))
		return nil, false
	}
	return h, true
}

// HandlerFromInform is New without the error detail. The cause is logged.
func HandlerFromInform(inform DataSourceInform, opts ...Option) (handler rdb.QueryHandler, ok bool) {
	h, err := New(inform, opts...)
	if err != nil {
		buildOptions(opts).logger.Warn("no query handler for data source",
			zap.String("driver", inform.Driver), zap.Error(err))
		return nil, false
	}
	return h, true
}
