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
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/teradata-labs/tabularuq/internal/log"
	"github.com/teradata-labs/tabularuq/internal/version"
	"github.com/teradata-labs/tabularuq/pkg/rdb"
	"github.com/teradata-labs/tabularuq/pkg/rdb/factory"
)

const envPrefix = "TABULARUQ"

// openFunc builds an unconnected handler for a data-source file.
type openFunc func(path string, logger *zap.Logger) (rdb.QueryHandler, error)

func openFromFile(path string, logger *zap.Logger) (rdb.QueryHandler, error) {
	return factory.Open(path, factory.WithLogger(logger))
}

// app carries state shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
	open    openFunc
}

func newApp() *app {
	return &app{v: viper.New(), open: openFromFile}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tabularuq",
		Short:         "Query relational data sources and upload tabular files",
		Long:          `tabularuq runs parameterized statements against a configured data source and loads CSV/XLSX files into it row by row.`,
		Version:       version.Get(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "CLI config file (toml, yaml or json)")
	flags.StringP("datasource", "d", "", "data-source file describing the driver and connection")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.Duration("timeout", 0, "overall deadline for the command (0 = none)")

	_ = a.v.BindPFlag("datasource", flags.Lookup("datasource"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("timeout", flags.Lookup("timeout"))

	root.AddCommand(
		newQueryCmd(a),
		newExecCmd(a),
		newLoadCmd(a),
		newVersionCmd(),
	)
	return root
}

// initConfig layers the config file and environment under the flags, then
// installs the global logger.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file %s: %w", a.cfgFile, err)
		}
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	logger, err := log.New(log.Config{
		Level:  a.v.GetString("log.level"),
		Format: a.v.GetString("log.format"),
	})
	if err != nil {
		return err
	}
	log.SetLogger(logger)
	return nil
}

func (a *app) context(parent context.Context) (context.Context, context.CancelFunc) {
	if d := a.v.GetDuration("timeout"); d > 0 {
		return context.WithTimeout(parent, d)
	}
	return context.WithCancel(parent)
}

// withHandler connects a handler for the configured data source, runs fn and
// closes the handler.
func (a *app) withHandler(ctx context.Context, fn func(h rdb.QueryHandler) error) (err error) {
	path := a.v.GetString("datasource")
	if path == "" {
		return errors.New("no data source: pass --datasource or set " + envPrefix + "_DATASOURCE")
	}

	logger := log.Logger()
	inner, err := a.open(path, logger)
	if err != nil {
		return err
	}
	h := rdb.NewInstrumentedHandler(inner, logger)

	start := time.Now()
	if err := h.Connect(ctx); err != nil {
		return err
	}
	log.Debug("connected", zap.String("datasource", path), zap.Duration("elapsed", time.Since(start)))

	defer func() {
		if cerr := h.Close(context.WithoutCancel(ctx)); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(h)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tabularuq version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tabularuq %s\n", version.Get())
		},
	}
}
