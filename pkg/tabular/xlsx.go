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
package tabular

import (
	"fmt"
	"iter"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/teradata-labs/tabularuq/pkg/rdb"
)

// XLSXPorter reads one worksheet of a workbook. InitRange selects the sheet
// and must be called before Cursor. Unlike CSVPorter no row is treated as a
// header.
type XLSXPorter struct {
	file  *excelize.File
	sheet string
	used  usedRange
	rows  *excelize.Rows
	err   error
}

var _ Porter = (*XLSXPorter)(nil)

// usedRange is the bounding box of a sheet's non-empty cells, 1-based and
// inclusive. The zero value is an empty sheet.
type usedRange struct {
	firstRow, lastRow int
	firstCol, lastCol int
}

func (r usedRange) empty() bool { return r.firstRow == 0 }

// record cuts the range's columns out of a row read from column A.
func (r usedRange) record(cols []string) Record {
	rec := make(Record, r.lastCol-r.firstCol+1)
	for i := range rec {
		if c := r.firstCol - 1 + i; c < len(cols) {
			rec[i] = cols[c]
		}
	}
	return rec
}

// OpenXLSX opens the workbook at path.
func OpenXLSX(path string) (*XLSXPorter, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening Excel file: %w", err)
	}
	return &XLSXPorter{file: file}, nil
}

// Sheets lists the worksheet names in workbook order.
func (p *XLSXPorter) Sheets() []string {
	return p.file.GetSheetList()
}

// InitRange selects sheet for reading and measures its used range. On error
// the previous selection is cleared, so Cursor reports ErrNotInitialized.
func (p *XLSXPorter) InitRange(sheet string) error {
	p.sheet = ""
	p.used = usedRange{}
	if !slices.Contains(p.file.GetSheetList(), sheet) {
		return fmt.Errorf("sheet %q not found", sheet)
	}
	used, err := p.scanRange(sheet)
	if err != nil {
		return rdb.Unknown("failed to read sheet "+sheet, err)
	}
	p.sheet = sheet
	p.used = used
	return nil
}

func (p *XLSXPorter) scanRange(sheet string) (usedRange, error) {
	rows, err := p.file.Rows(sheet)
	if err != nil {
		return usedRange{}, err
	}
	defer func() { _ = rows.Close() }()

	var r usedRange
	for row := 1; rows.Next(); row++ {
		cols, err := rows.Columns()
		if err != nil {
			return usedRange{}, err
		}
		for i, v := range cols {
			if v == "" {
				continue
			}
			col := i + 1
			if r.firstRow == 0 {
				r.firstRow = row
			}
			r.lastRow = row
			if r.firstCol == 0 || col < r.firstCol {
				r.firstCol = col
			}
			r.lastCol = max(r.lastCol, col)
		}
	}
	return r, rows.Error()
}

// Cursor yields each row of the selected sheet's used range, which starts
// at the first non-empty cell. Empty cells are "" and every record spans
// the full width of the range.
func (p *XLSXPorter) Cursor() (iter.Seq[Record], error) {
	if p.sheet == "" {
		return nil, rdb.NotInitialized("Cannot get Range Data")
	}
	p.closeRows()
	p.err = nil
	if p.used.empty() {
		return func(func(Record) bool) {}, nil
	}

	rows, err := p.file.Rows(p.sheet)
	if err != nil {
		return nil, rdb.Unknown("failed to read sheet "+p.sheet, err)
	}
	p.rows = rows
	used := p.used

	return func(yield func(Record) bool) {
		defer p.release(rows)
		for row := 1; rows.Next(); row++ {
			if row < used.firstRow {
				continue
			}
			if row > used.lastRow {
				return
			}
			cols, err := rows.Columns()
			if err != nil {
				p.err = rdb.Unknown("failed to read row", err)
				return
			}
			if !yield(used.record(cols)) {
				return
			}
		}
		if err := rows.Error(); err != nil {
			p.err = rdb.Unknown("failed to read sheet "+p.sheet, err)
		}
	}, nil
}

// closeRows releases the reader of a cursor that was never drained.
func (p *XLSXPorter) closeRows() {
	if p.rows != nil {
		p.release(p.rows)
	}
}

func (p *XLSXPorter) release(rows *excelize.Rows) {
	_ = rows.Close()
	if p.rows == rows {
		p.rows = nil
	}
}

// Err returns the error that ended the last cursor early.
func (p *XLSXPorter) Err() error { return p.err }

// Close closes any open cursor and the workbook.
func (p *XLSXPorter) Close() error {
	p.closeRows()
	return p.file.Close()
}
