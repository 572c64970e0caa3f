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
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/teradata-labs/tabularuq/pkg/rdb"
)

const nullText = "NULL"

// formatCell renders a cell for terminal output.
func formatCell(cell *rdb.DataType) string {
	if cell == nil {
		return nullText
	}
	switch v := cell.Interface().(type) {
	case string:
		return v
	case []byte:
		return "0x" + hex.EncodeToString(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// writeTable prints rows as aligned, tab separated columns with a header
// when column metadata is present.
func writeTable(w io.Writer, rows *rdb.DataRows) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if meta, ok := rows.ColumnMeta(); ok && len(meta) > 0 {
		fmt.Fprintln(tw, strings.Join(meta, "\t"))
		rule := make([]string, len(meta))
		for i, name := range meta {
			rule[i] = strings.Repeat("-", max(len(name), 1))
		}
		fmt.Fprintln(tw, strings.Join(rule, "\t"))
	}

	for _, rec := range rows.Records() {
		cells := rec.Cells()
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = formatCell(c)
		}
		fmt.Fprintln(tw, strings.Join(out, "\t"))
	}
	return tw.Flush()
}
