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
	"time"

	"go.uber.org/zap"

	"github.com/teradata-labs/tabularuq/pkg/rdb"
)

// bindValue converts d into a driver argument.
//
// Unsigned widths SQL Server has no type for are widened into the next signed
// type wide enough to hold them: U16 becomes int32, U32 and U64 become int64
// (U64 values above MaxInt64 wrap). I8 is widened to int16 because TINYINT is
// unsigned. ok is false for I128 and U128, which have no parameter type.
func bindValue(d rdb.DataType) (arg any, ok bool) {
	switch d.Kind() {
	case rdb.KindI8:
		v, _ := rdb.Value[int8](d)
		return int16(v), true
	case rdb.KindI16:
		v, _ := rdb.Value[int16](d)
		return v, true
	case rdb.KindI32:
		v, _ := rdb.Value[int32](d)
		return v, true
	case rdb.KindI64:
		v, _ := rdb.Value[int64](d)
		return v, true
	case rdb.KindU8:
		v, _ := rdb.Value[uint8](d)
		return v, true
	case rdb.KindU16:
		v, _ := rdb.Value[uint16](d)
		return int32(v), true
	case rdb.KindU32:
		v, _ := rdb.Value[uint32](d)
		return int64(v), true
	case rdb.KindU64:
		v, _ := rdb.Value[uint64](d)
		return int64(v), true
	case rdb.KindF32:
		v, _ := rdb.Value[float32](d)
		return v, true
	case rdb.KindF64:
		v, _ := rdb.Value[float64](d)
		return v, true
	case rdb.KindBool:
		v, _ := rdb.Value[bool](d)
		return v, true
	case rdb.KindString:
		v, _ := rdb.Value[string](d)
		return v, true
	case rdb.KindBytes:
		v, _ := rdb.Value[[]byte](d)
		return v, true
	case rdb.KindDateTime:
		v, _ := rdb.Value[time.Time](d)
		return v, true
	default:
		return nil, false
	}
}

// bindArgs converts binds in order. Values without a parameter type are
// dropped, so later placeholders shift left; each drop is logged.
func bindArgs(binds []rdb.DataType, logger *zap.Logger) []any {
	args := make([]any, 0, len(binds))
	for i, b := range binds {
		arg, ok := bindValue(b)
		if !ok {
			logger.Warn("bind value skipped, no SQL Server parameter type",
				zap.Int("position", i+1),
				zap.Stringer("kind", b.Kind()))
			continue
		}
		args = append(args, arg)
	}
	return args
}
