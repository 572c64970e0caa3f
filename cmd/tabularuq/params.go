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
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/teradata-labs/tabularuq/pkg/rdb"
)

// parseParam parses a --param value of the form "type:value". Without a
// recognised type prefix the whole argument is bound as a string.
//
// Types: i8 i16 i32 i64 i128 u8 u16 u32 u64 u128 f32 f64 bool str bytes
// (hex) datetime (RFC 3339). NULL cannot be bound.
func parseParam(arg string) (rdb.DataType, error) {
	kind, value, found := strings.Cut(arg, ":")
	if !found {
		return rdb.String(arg), nil
	}

	switch strings.ToLower(kind) {
	case "i8":
		v, err := strconv.ParseInt(value, 10, 8)
		return rdb.I8(int8(v)), paramErr(arg, err)
	case "i16":
		v, err := strconv.ParseInt(value, 10, 16)
		return rdb.I16(int16(v)), paramErr(arg, err)
	case "i32", "int":
		v, err := strconv.ParseInt(value, 10, 32)
		return rdb.I32(int32(v)), paramErr(arg, err)
	case "i64":
		v, err := strconv.ParseInt(value, 10, 64)
		return rdb.I64(v), paramErr(arg, err)
	case "u8":
		v, err := strconv.ParseUint(value, 10, 8)
		return rdb.U8(uint8(v)), paramErr(arg, err)
	case "u16":
		v, err := strconv.ParseUint(value, 10, 16)
		return rdb.U16(uint16(v)), paramErr(arg, err)
	case "u32":
		v, err := strconv.ParseUint(value, 10, 32)
		return rdb.U32(uint32(v)), paramErr(arg, err)
	case "u64":
		v, err := strconv.ParseUint(value, 10, 64)
		return rdb.U64(v), paramErr(arg, err)
	case "i128":
		b, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return rdb.DataType{}, fmt.Errorf("invalid parameter %q: not an integer", arg)
		}
		v, ok := rdb.Int128FromBig(b)
		if !ok {
			return rdb.DataType{}, fmt.Errorf("invalid parameter %q: out of range", arg)
		}
		return rdb.I128(v), nil
	case "u128":
		b, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return rdb.DataType{}, fmt.Errorf("invalid parameter %q: not an integer", arg)
		}
		v, ok := rdb.Uint128FromBig(b)
		if !ok {
			return rdb.DataType{}, fmt.Errorf("invalid parameter %q: out of range", arg)
		}
		return rdb.U128(v), nil
	case "f32":
		v, err := strconv.ParseFloat(value, 32)
		return rdb.F32(float32(v)), paramErr(arg, err)
	case "f64", "float":
		v, err := strconv.ParseFloat(value, 64)
		return rdb.F64(v), paramErr(arg, err)
	case "bool":
		v, err := strconv.ParseBool(value)
		return rdb.Bool(v), paramErr(arg, err)
	case "str", "string":
		return rdb.String(value), nil
	case "bytes":
		v, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
		return rdb.Bytes(v), paramErr(arg, err)
	case "datetime":
		v, err := time.Parse(time.RFC3339Nano, value)
		return rdb.DateTime(v), paramErr(arg, err)
	default:
		return rdb.String(arg), nil
	}
}

func paramErr(arg string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("invalid parameter %q: %w", arg, err)
}

func parseParams(args []string) ([]rdb.DataType, error) {
	binds := make([]rdb.DataType, 0, len(args))
	for _, arg := range args {
		d, err := parseParam(arg)
		if err != nil {
			return nil, err
		}
		binds = append(binds, d)
	}
	return binds, nil
}
