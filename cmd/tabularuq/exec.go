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

func newExecCmd(a *app) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:     "exec SQL",
		Short:   "Run a statement that returns no rows and print the affected row count",
		Example: `  tabularuq exec -d datasource.toml "UPDATE orders SET status = @p1 WHERE id = @p2" -p str:shipped -p i64:42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			binds, err := parseParams(params)
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd.Context())
			defer cancel()

			return a.withHandler(ctx, func(h rdb.QueryHandler) error {
				res, err := h.Mutate(ctx, args[0], binds)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d rows affected\n", res.AffectedRows())
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "positional parameter as type:value, bound to @p1, @p2, ... in order")
	return cmd
}
