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

// Package tabular reads CSV and XLSX files as streams of string records,
// ready to be bound as statement parameters.
package tabular

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"github.com/teradata-labs/tabularuq/pkg/rdb"
)

// Record is one row of a tabular file.
type Record []string

// ErrNotInitialized is returned by Cursor when the porter has nothing
// selected to read.
var ErrNotInitialized = rdb.ErrNotInitialized

// Porter is an open tabular file.
type Porter interface {
	// Cursor returns the remaining records. Iteration stops at the end of
	// the data or at the first unreadable record; Err reports the latter.
	Cursor() (iter.Seq[Record], error)

	// Err returns the error that ended the last cursor early, if any.
	Err() error

	Close() error
}

// Open opens path by extension: .csv, or .xlsx/.xlsm. For workbooks sheet
// selects the worksheet; an empty sheet selects the first one. sheet is
// ignored for CSV files.
func Open(path, sheet string) (Porter, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return OpenCSV(path)
	case ".xlsx", ".xlsm":
		p, err := OpenXLSX(path)
		if err != nil {
			return nil, err
		}
		if sheet == "" {
			sheets := p.Sheets()
			if len(sheets) == 0 {
				_ = p.Close()
				return nil, fmt.Errorf("workbook %s has no sheets", path)
			}
			sheet = sheets[0]
		}
		if err := p.InitRange(sheet); err != nil {
			_ = p.Close()
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported tabular file extension %q", ext)
	}
}
