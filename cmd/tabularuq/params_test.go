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
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teradata-labs/tabularuq/pkg/rdb"
)

func TestParseParam(t *testing.T) {
	tests := []struct {
		arg  string
		want rdb.DataType
	}{
		{"i8:-8", rdb.I8(-8)},
		{"i16:300", rdb.I16(300)},
		{"i32:-7", rdb.I32(-7)},
		{"int:7", rdb.I32(7)},
		{"i64:9000000000", rdb.I64(9000000000)},
		{"u8:255", rdb.U8(255)},
		{"u16:65535", rdb.U16(math.MaxUint16)},
		{"u32:4294967295", rdb.U32(math.MaxUint32)},
		{"u64:18446744073709551615", rdb.U64(math.MaxUint64)},
		{"i128:-42", rdb.I128(rdb.Int128FromInt64(-42))},
		{"u128:5", rdb.U128(rdb.Uint128{Lo: 5})},
		{"f32:1.5", rdb.F32(1.5)},
		{"f64:2.25", rdb.F64(2.25)},
		{"bool:true", rdb.Bool(true)},
		{"str:a:b", rdb.String("a:b")},
		{"bytes:0xdead", rdb.Bytes([]byte{0xde, 0xad})},
		{"plain", rdb.String("plain")},
		{"http://host", rdb.String("http://host")},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseParam(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseParam_DateTime(t *testing.T) {
	got, err := parseParam("datetime:2024-03-01T12:30:00+09:00")
	require.NoError(t, err)
	v, ok := rdb.Value[time.Time](got)
	require.True(t, ok)
	assert.True(t, v.Equal(time.Date(2024, 3, 1, 3, 30, 0, 0, time.UTC)))
}

func TestParseParam_Errors(t *testing.T) {
	for _, arg := range []string{"i8:200", "u8:-1", "i32:x", "bool:maybe", "bytes:zz", "datetime:yesterday", "i128:1e3", "u128:-1"} {
		_, err := parseParam(arg)
		assert.Error(t, err, arg)
	}
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "NULL", formatCell(nil))
	assert.Equal(t, "abc", formatCell(rdb.Present(rdb.String("abc"))))
	assert.Equal(t, "0x0aff", formatCell(rdb.Present(rdb.Bytes([]byte{0x0a, 0xff}))))
	assert.Equal(t, "-3", formatCell(rdb.Present(rdb.I128(rdb.Int128FromInt64(-3)))))
	assert.Equal(t, "true", formatCell(rdb.Present(rdb.Bool(true))))
	assert.Equal(t, "1.5", formatCell(rdb.Present(rdb.F64(1.5))))
	ts := time.Date(1900, 1, 1, 0, 0, 0, 3_000_000, time.UTC)
	assert.Equal(t, "1900-01-01T00:00:00.003Z", formatCell(rdb.Present(rdb.DateTime(ts))))
}

func TestWriteTable_NoMetadata(t *testing.T) {
	var buf bytes.Buffer
	rows := rdb.NewDataRows(nil, []rdb.DataRecord{rdb.NewDataRecord([]*rdb.DataType{rdb.Present(rdb.U8(1))})})
	require.NoError(t, writeTable(&buf, rows))
	assert.Equal(t, "1\n", buf.String())
}

func TestLimitRows(t *testing.T) {
	f := limitRows(2)
	rec := rdb.NewDataRecord(nil)
	assert.True(t, f([]string{"a"}, nil))
	assert.True(t, f([]string{"a"}, &rec))
	assert.False(t, f([]string{"a"}, &rec))

	assert.True(t, limitRows(0)(nil, &rec))
}
