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
	"fmt"
	"strings"

	"github.com/microsoft/go-mssqldb/msdsn"
)

// DefaultPort is used when Config.Port is zero.
const DefaultPort = 1433

// Config holds the connection settings for a SQL Server data source.
type Config struct {
	// ADOString is an optional pre-formed connection string
	// ("server=...;user id=...;..."). Host, Port, Database and credentials
	// are always applied on top of it.
	ADOString string `mapstructure:"ado_string"`

	Host string `mapstructure:"host"`

	// Port defaults to 1433
	Port uint16 `mapstructure:"port"`

	Database string `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// EffectivePort returns Port or DefaultPort.
func (c Config) EffectivePort() uint16 {
	if c.Port == 0 {
		return DefaultPort
	}
	return c.Port
}

// dsn builds the driver configuration. Encryption is forced off, a named
// instance from the ADO string is dropped so the configured port is dialled
// directly, and the driver's default dial timeout is disabled unless the ADO
// string asks for one; the caller's context bounds the connect instead.
func (c Config) dsn() (msdsn.Config, error) {
	cfg, err := msdsn.Parse(c.ADOString)
	if err != nil {
		// the connection string may carry credentials, so it is not echoed
		return msdsn.Config{}, fmt.Errorf("failed to parse ado_string: %w", err)
	}

	cfg.Host = c.Host
	cfg.Instance = ""
	cfg.Port = uint64(c.EffectivePort())
	cfg.Database = c.Database
	cfg.User = c.Username
	cfg.Password = c.Password
	cfg.Encryption = msdsn.EncryptionDisabled
	cfg.TLSConfig = nil
	if !adoHasKey(c.ADOString, msdsn.DialTimeout) {
		cfg.DialTimeout = -1
	}

	return cfg, nil
}

// adoHasKey reports whether the semicolon-separated connection string sets
// key, compared case-insensitively.
func adoHasKey(ado, key string) bool {
	for part := range strings.SplitSeq(ado, ";") {
		name, _, ok := strings.Cut(part, "=")
		if ok && strings.EqualFold(strings.TrimSpace(name), key) {
			return true
		}
	}
	return false
}

// String describes the target without credentials.
func (c Config) String() string {
	return fmt.Sprintf("sqlserver://%s:%d/%s", c.Host, c.EffectivePort(), c.Database)
}
