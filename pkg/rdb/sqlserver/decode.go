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
package sqlserver

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teradata-labs/tabularuq/pkg/rdb"
)

const (
	secondsPerDay = 86400
	ticksPerDay   = 300 * secondsPerDay

	// defaultTimeScale is the fractional-second scale of a bare TIME column.
	defaultTimeScale = 7
)

var (
	dateTimeEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	dateEpoch     = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
)

var errUnsupportedType = errors.New("unsupported column type")

// DecodeDateTime builds a DATETIME value from its wire form: days since
// 1900-01-01 and 1/300 second ticks since midnight. Ticks are converted to
// milliseconds as ticks*10/3, truncated.
func DecodeDateTime(days int32, ticks uint32) time.Time {
	millis := int64(ticks) * 10 / 3
	return dateTimeEpoch.AddDate(0, 0, int(days)).Add(time.Duration(millis) * time.Millisecond)
}

// EncodeDateTime is the inverse of DecodeDateTime. The wall clock of t is
// used and its location ignored. Sub-tick precision is rounded to the
// nearest tick.
func EncodeDateTime(t time.Time) (days int32, ticks uint32) {
	wall := wallClockUTC(t)
	secs := wall.Unix() - dateTimeEpoch.Unix()
	d := floorDiv(secs, secondsPerDay)
	rem := secs - d*secondsPerDay

	nanos := rem*int64(time.Second) + int64(wall.Nanosecond())
	tk := (nanos*300 + int64(time.Second)/2) / int64(time.Second)
	if tk >= ticksPerDay {
		d++
		tk -= ticksPerDay
	}
	return int32(d), uint32(tk)
}

func wallClockUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// decodeColumn converts a scanned driver value into a cell. typeName is the
// column's DatabaseTypeName and scale its fractional-second scale, which
// only TIME uses. A nil raw value is SQL NULL and yields a nil cell without
// error.
func decodeColumn(typeName string, scale int64, raw any) (*rdb.DataType, error) {
	if raw == nil {
		return nil, nil
	}

	var (
		d   rdb.DataType
		err error
	)
	switch strings.ToUpper(typeName) {
	case "TINYINT":
		var v int64
		if v, err = asInt64(raw); err == nil {
			d = rdb.U8(uint8(v))
		}
	case "SMALLINT":
		var v int64
		if v, err = asInt64(raw); err == nil {
			d = rdb.I16(int16(v))
		}
	case "INT":
		var v int64
		if v, err = asInt64(raw); err == nil {
			d = rdb.I32(int32(v))
		}
	case "BIGINT":
		var v int64
		if v, err = asInt64(raw); err == nil {
			d = rdb.I64(v)
		}
	case "REAL":
		var v float64
		if v, err = asFloat64(raw); err == nil {
			d = rdb.F32(float32(v))
		}
	case "FLOAT", "MONEY", "SMALLMONEY":
		var v float64
		if v, err = asFloat64(raw); err == nil {
			d = rdb.F64(v)
		}
	case "BIT":
		v, ok := raw.(bool)
		if !ok {
			return nil, mismatch(typeName, raw)
		}
		d = rdb.Bool(v)
	case "CHAR", "VARCHAR", "NCHAR", "NVARCHAR", "TEXT", "NTEXT":
		switch v := raw.(type) {
		case string:
			d = rdb.String(v)
		case []byte:
			d = rdb.String(string(v))
		default:
			return nil, mismatch(typeName, raw)
		}
	case "UNIQUEIDENTIFIER":
		var s string
		if s, err = decodeGUID(raw); err == nil {
			d = rdb.String(s)
		}
	case "BINARY", "VARBINARY", "IMAGE":
		v, ok := raw.([]byte)
		if !ok {
			return nil, mismatch(typeName, raw)
		}
		d = rdb.Bytes(v)
	case "DECIMAL", "NUMERIC":
		var v rdb.Int128
		if v, err = decodeNumeric(raw); err == nil {
			d = rdb.I128(v)
		}
	case "DATETIMEOFFSET":
		t, ok := raw.(time.Time)
		if !ok {
			return nil, mismatch(typeName, raw)
		}
		_, offset := t.Zone()
		d = rdb.I16(int16(offset / 60))
	case "DATETIME":
		t, ok := raw.(time.Time)
		if !ok {
			return nil, mismatch(typeName, raw)
		}
		d = rdb.DateTime(DecodeDateTime(EncodeDateTime(t)))
	case "TIME":
		t, ok := raw.(time.Time)
		if !ok {
			return nil, mismatch(typeName, raw)
		}
		d = rdb.U64(timeIncrements(t, scale))
	case "DATE":
		t, ok := raw.(time.Time)
		if !ok {
			return nil, mismatch(typeName, raw)
		}
		d = rdb.U32(daysSinceDateEpoch(t))
	default:
		return nil, fmt.Errorf("%w %q", errUnsupportedType, typeName)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func mismatch(typeName string, raw any) error {
	return fmt.Errorf("unexpected %T value for %s column", raw, typeName)
}

func asInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("unexpected %T value for integer column", raw)
	}
}

// asFloat64 also accepts the textual form the driver uses for MONEY.
func asFloat64(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case []byte:
		return strconv.ParseFloat(string(v), 64)
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("unexpected %T value for floating point column", raw)
	}
}

// decodeNumeric returns the unscaled integer of a DECIMAL/NUMERIC value,
// e.g. "123.45" -> 12345.
func decodeNumeric(raw any) (rdb.Int128, error) {
	var s string
	switch v := raw.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return rdb.Int128{}, fmt.Errorf("unexpected %T value for numeric column", raw)
	}

	digits := strings.Replace(strings.TrimSpace(s), ".", "", 1)
	b, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return rdb.Int128{}, fmt.Errorf("invalid numeric value %q", s)
	}
	v, ok := rdb.Int128FromBig(b)
	if !ok {
		return rdb.Int128{}, fmt.Errorf("numeric value %q out of 128-bit range", s)
	}
	return v, nil
}

// decodeGUID renders a UNIQUEIDENTIFIER in canonical form. The wire layout
// stores the first three groups little-endian.
func decodeGUID(raw any) (string, error) {
	switch v := raw.(type) {
	case []byte:
		if len(v) != 16 {
			return "", fmt.Errorf("invalid uniqueidentifier length %d", len(v))
		}
		var b [16]byte
		copy(b[:], v)
		b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
		b[4], b[5] = b[5], b[4]
		b[6], b[7] = b[7], b[6]
		return uuid.UUID(b).String(), nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return "", fmt.Errorf("invalid uniqueidentifier: %w", err)
		}
		return id.String(), nil
	default:
		return "", fmt.Errorf("unexpected %T value for uniqueidentifier column", raw)
	}
}

// timeIncrements returns 100ns increments since midnight.
// timeIncrements counts the time of day in units of 10^-scale seconds, the
// way TIME(scale) is stored on the wire.
func timeIncrements(t time.Time, scale int64) uint64 {
	if scale < 0 || scale > defaultTimeScale {
		scale = defaultTimeScale
	}
	secs := uint64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	nanos := secs*uint64(time.Second) + uint64(t.Nanosecond())
	unit := uint64(1)
	for range 9 - scale {
		unit *= 10
	}
	return nanos / unit
}

func daysSinceDateEpoch(t time.Time) uint32 {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return uint32((day.Unix() - dateEpoch.Unix()) / secondsPerDay)
}
