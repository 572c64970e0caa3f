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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() DataRecord {
	return NewDataRecord([]*DataType{
		Present(I32(7)),
		nil,
		Present(String("seven")),
	})
}

func TestCellValue(t *testing.T) {
	rec := sampleRecord()

	v, ok := CellValue[int32](rec, 0)
	require.True(t, ok)
	assert.Equal(t, int32(7), v)

	s, ok := CellValue[string](rec, 2)
	require.True(t, ok)
	assert.Equal(t, "seven", s)
}

func TestCellValue_AbsentCases(t *testing.T) {
	rec := sampleRecord()

	tests := []struct {
		name  string
		index int
	}{
		{"negative index", -1},
		{"past the end", 3},
		{"null cell", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := CellValue[int32](rec, tt.index)
			assert.False(t, ok)
		})
	}

	t.Run("type mismatch", func(t *testing.T) {
		_, ok := CellValue[int64](rec, 0)
		assert.False(t, ok)
		_, ok = CellValue[int32](rec, 2)
		assert.False(t, ok)
	})
}

func TestDataRecord_CellAndIsNull(t *testing.T) {
	rec := sampleRecord()
	assert.Equal(t, 3, rec.Len())

	assert.True(t, rec.IsNull(1))
	assert.False(t, rec.IsNull(0))
	assert.False(t, rec.IsNull(10), "out of range is not NULL")

	cell, ok := rec.Cell(0)
	require.True(t, ok)
	assert.Equal(t, KindI32, cell.Kind())

	_, ok = rec.Cell(1)
	assert.False(t, ok)
}

func TestDataRecord_Immutable(t *testing.T) {
	cells := []*DataType{Present(I8(1))}
	rec := NewDataRecord(cells)
	cells[0] = nil

	_, ok := CellValue[int8](rec, 0)
	assert.True(t, ok, "record must not observe changes to the source slice")

	out := rec.Cells()
	out[0] = nil
	_, ok = CellValue[int8](rec, 0)
	assert.True(t, ok, "record must not observe changes to the returned slice")
}

func TestDataRows_ColumnMeta(t *testing.T) {
	rows := NewDataRows(nil, nil)
	_, ok := rows.ColumnMeta()
	assert.False(t, ok)
	assert.Equal(t, 0, rows.Len())

	rows = NewDataRows([]string{"id", "name", "note"}, []DataRecord{sampleRecord(), sampleRecord()})
	meta, ok := rows.ColumnMeta()
	require.True(t, ok)
	assert.Equal(t, []string{"id", "name", "note"}, meta)
	assert.Equal(t, 2, rows.Len())

	for _, rec := range rows.Records() {
		assert.Equal(t, len(meta), rec.Len(), "column count should match cell count")
	}
}

func TestDataRows_EmptyMetaIsPresent(t *testing.T) {
	rows := NewDataRows([]string{}, nil)
	meta, ok := rows.ColumnMeta()
	assert.True(t, ok)
	assert.Empty(t, meta)
}
