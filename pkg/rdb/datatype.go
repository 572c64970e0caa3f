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
	"bytes"
	"fmt"
	"time"
)

// Kind identifies the active variant of a DataType.
type Kind uint8

// Variants of DataType. KindInvalid marks the zero DataType; every other
// Kind names the Go type carried, see Native.
const (
	KindInvalid Kind = iota
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindF32
	KindF64
	KindBool
	KindString
	KindBytes
	KindDateTime
)

var kindNames = [...]string{
	KindInvalid:  "Invalid",
	KindI8:       "I8",
	KindI16:      "I16",
	KindI32:      "I32",
	KindI64:      "I64",
	KindI128:     "I128",
	KindU8:       "U8",
	KindU16:      "U16",
	KindU32:      "U32",
	KindU64:      "U64",
	KindU128:     "U128",
	KindF32:      "F32",
	KindF64:      "F64",
	KindBool:     "Bool",
	KindString:   "String",
	KindBytes:    "Bytes",
	KindDateTime: "DateTime",
}

// String returns the variant name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Native is the set of Go types a DataType variant can carry. Each type maps
// to exactly one Kind.
type Native interface {
	int8 | int16 | int32 | int64 | Int128 |
		uint8 | uint16 | uint32 | uint64 | Uint128 |
		float32 | float64 | bool | string | []byte | time.Time
}

// DataType is a single non-NULL typed value. Exactly one variant is active;
// construct values with I8, U32, String, DateTime and friends. The zero
// DataType has KindInvalid and matches no extraction.
type DataType struct {
	kind  Kind
	value any
}

// I8 wraps a signed 8-bit integer.
func I8(v int8) DataType { return DataType{kind: KindI8, value: v} }

// I16 wraps a signed 16-bit integer.
func I16(v int16) DataType { return DataType{kind: KindI16, value: v} }

// I32 wraps a signed 32-bit integer.
func I32(v int32) DataType { return DataType{kind: KindI32, value: v} }

// I64 wraps a signed 64-bit integer.
func I64(v int64) DataType { return DataType{kind: KindI64, value: v} }

// I128 wraps a signed 128-bit integer, also used for unscaled decimals.
func I128(v Int128) DataType { return DataType{kind: KindI128, value: v} }

// U8 wraps an unsigned 8-bit integer.
func U8(v uint8) DataType { return DataType{kind: KindU8, value: v} }

// U16 wraps an unsigned 16-bit integer.
func U16(v uint16) DataType { return DataType{kind: KindU16, value: v} }

// U32 wraps an unsigned 32-bit integer.
func U32(v uint32) DataType { return DataType{kind: KindU32, value: v} }

// U64 wraps an unsigned 64-bit integer.
func U64(v uint64) DataType { return DataType{kind: KindU64, value: v} }

// U128 wraps an unsigned 128-bit integer.
func U128(v Uint128) DataType { return DataType{kind: KindU128, value: v} }

// F32 wraps a single-precision float.
func F32(v float32) DataType { return DataType{kind: KindF32, value: v} }

// F64 wraps a double-precision float.
func F64(v float64) DataType { return DataType{kind: KindF64, value: v} }

// Bool wraps a boolean.
func Bool(v bool) DataType { return DataType{kind: KindBool, value: v} }

// String wraps a text value.
func String(v string) DataType { return DataType{kind: KindString, value: v} }

// Bytes copies v so later writes by the caller do not leak into the value.
func Bytes(v []byte) DataType {
	return DataType{kind: KindBytes, value: bytes.Clone(v)}
}

// DateTime carries a timezone-aware timestamp; the location of v is kept.
func DateTime(v time.Time) DataType { return DataType{kind: KindDateTime, value: v} }

// Kind returns the active variant.
func (d DataType) Kind() Kind { return d.kind }

// Interface returns the carried Go value. Byte slices are copied.
func (d DataType) Interface() any {
	if b, ok := d.value.([]byte); ok {
		return bytes.Clone(b)
	}
	return d.value
}

// String renders the value for diagnostics, e.g. "I32(7)".
func (d DataType) String() string {
	switch v := d.value.(type) {
	case nil:
		return d.kind.String()
	case string:
		return fmt.Sprintf("%s(%q)", d.kind, v)
	case []byte:
		return fmt.Sprintf("%s(%x)", d.kind, v)
	case time.Time:
		return fmt.Sprintf("%s(%s)", d.kind, v.Format(time.RFC3339Nano))
	default:
		return fmt.Sprintf("%s(%v)", d.kind, v)
	}
}

// Value extracts the carried value as T. It reports false unless the active
// variant is exactly the one T designates; no widening or truncation happens
// here (I32 never satisfies int64).
func Value[T Native](d DataType) (T, bool) {
	v, ok := d.value.(T)
	if !ok {
		var zero T
		return zero, false
	}
	if b, isBytes := any(v).([]byte); isBytes {
		return any(bytes.Clone(b)).(T), true
	}
	return v, true
}

// Present returns a pointer to d, for building non-NULL cells.
func Present(d DataType) *DataType {
	return &d
}
