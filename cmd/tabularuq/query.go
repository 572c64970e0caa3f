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

	"github.com/teradata-labs/tabularuq/pkg/rdb"
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		params []string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "query SQL",
		Short: "Run a statement and print its rows",
		Example: `  tabularuq query -d datasource.toml "SELECT id, name FROM customers WHERE region = @p1" -p str:EMEA
  tabularuq query -d datasource.toml --limit 10 "SELECT * FROM orders"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			binds, err := parseParams(params)
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}

			ctx, cancel := a.context(cmd.Context())
			defer cancel()

			return a.withHandler(ctx, func(h rdb.QueryHandler) error {
				rows, err := h.Query(ctx, args[0], binds, limitRows(limit))
				if err != nil {
					return err
				}
				if err := writeTable(cmd.OutOrStdout(), rows); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "(%d rows)\n", rows.Len())
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "positional parameter as type:value, bound to @p1, @p2, ... in order")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many rows (0 = all)")
	return cmd
}

// limitRows stops the stream once limit rows have been received. A limit of
// zero reads everything.
func limitRows(limit int) rdb.FetchMore {
	if limit == 0 {
		return rdb.DefaultFetchMore
	}
	seen := 0
	return func(_ []string, rec *rdb.DataRecord) bool {
		if rec == nil {
			return true
		}
		seen++
		return seen < limit
	}
}
