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
package rdb

import "slices"

// DataRecord is one row: an ordered, fixed-length list of cells. A nil cell
// is SQL NULL.
type DataRecord struct {
	cells []*DataType
}

// NewDataRecord builds a record from cells. The slice is copied.
func NewDataRecord(cells []*DataType) DataRecord {
	return DataRecord{cells: slices.Clone(cells)}
}

// Len returns the number of cells.
func (r DataRecord) Len() int { return len(r.cells) }

// Cells returns a copy of the cell list.
func (r DataRecord) Cells() []*DataType { return slices.Clone(r.cells) }

// Cell returns the value at index. It reports false when index is out of
// range or the cell is NULL.
func (r DataRecord) Cell(index int) (DataType, bool) {
	if index < 0 || index >= len(r.cells) || r.cells[index] == nil {
		return DataType{}, false
	}
	return *r.cells[index], true
}

// IsNull reports whether the cell at index exists and is NULL.
func (r DataRecord) IsNull(index int) bool {
	return index >= 0 && index < len(r.cells) && r.cells[index] == nil
}

// CellValue extracts the cell at index as T. It reports false when the index
// is out of range, the cell is NULL, or the cell holds another variant; the
// three cases are not distinguished. Use Cell and IsNull when the caller
// needs to tell them apart.
func CellValue[T Native](r DataRecord, index int) (T, bool) {
	cell, ok := r.Cell(index)
	if !ok {
		var zero T
		return zero, false
	}
	return Value[T](cell)
}

// DataRows is a full or partial result set: the most recent column metadata
// (absent until a metadata event was observed) and records in arrival order.
type DataRows struct {
	columnMeta []string
	records    []DataRecord
}

// NewDataRows builds a result set. A nil columnMeta means no metadata was seen.
func NewDataRows(columnMeta []string, records []DataRecord) *DataRows {
	return &DataRows{
		columnMeta: slices.Clone(columnMeta),
		records:    slices.Clone(records),
	}
}

// ColumnMeta returns the column names and whether metadata is present.
func (d *DataRows) ColumnMeta() ([]string, bool) {
	if d.columnMeta == nil {
		return nil, false
	}
	return slices.Clone(d.columnMeta), true
}

// Records returns the records in arrival order.
func (d *DataRows) Records() []DataRecord { return slices.Clone(d.records) }

// Len returns the number of records.
func (d *DataRows) Len() int { return len(d.records) }
