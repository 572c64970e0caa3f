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
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/teradata-labs/tabularuq/internal/log"
	"github.com/teradata-labs/tabularuq/pkg/rdb"
	"github.com/teradata-labs/tabularuq/pkg/tabular"
)

func newLoadCmd(a *app) *cobra.Command {
	var (
		statement string
		sheet     string
		skip      int
	)

	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Upload a CSV or XLSX file by running a statement once per record",
		Long: `load reads FILE record by record and runs --statement for each one, binding
the record's fields as string parameters @p1, @p2, ... in column order.

The header row of a CSV file is skipped. Workbook rows are read as-is; use
--skip to drop header rows.`,
		Example: `  tabularuq load -d datasource.toml customers.csv --statement "INSERT INTO customers (id, name) VALUES (@p1, @p2)"
  tabularuq load -d datasource.toml book.xlsx --sheet Orders --skip 1 --statement "INSERT INTO orders VALUES (@p1, @p2, @p3)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if statement == "" {
				return fmt.Errorf("--statement is required")
			}

			porter, err := tabular.Open(args[0], sheet)
			if err != nil {
				return err
			}
			defer porter.Close()

			ctx, cancel := a.context(cmd.Context())
			defer cancel()

			return a.withHandler(ctx, func(h rdb.QueryHandler) error {
				cursor, err := porter.Cursor()
				if err != nil {
					return err
				}

				var records, affected uint64
				line := 0
				for rec := range cursor {
					line++
					if line <= skip {
						continue
					}
					res, err := h.Mutate(ctx, statement, recordBinds(rec))
					if err != nil {
						return fmt.Errorf("record %d: %w", line, err)
					}
					records++
					affected += res.AffectedRows()
				}
				if err := porter.Err(); err != nil {
					return fmt.Errorf("after record %d: %w", line, err)
				}

				log.Info("load finished",
					zap.String("file", args[0]),
					zap.Uint64("records", records),
					zap.Uint64("affected_rows", affected))
				fmt.Fprintf(cmd.OutOrStdout(), "%d records loaded, %d rows affected\n", records, affected)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&statement, "statement", "s", "", "statement to run per record, with @p1..@pN placeholders")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet to read from a workbook (default: first sheet)")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of leading records to skip")
	return cmd
}

func recordBinds(rec tabular.Record) []rdb.DataType {
	binds := make([]rdb.DataType, len(rec))
	for i, field := range rec {
		binds[i] = rdb.String(field)
	}
	return binds
}
