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

import "math/big"

var (
	two64      = new(big.Int).Lsh(big.NewInt(1), 64)
	minInt128  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

// Int128 is a two's complement signed 128-bit integer: Hi*2^64 + Lo.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128FromInt64 sign-extends v.
func Int128FromInt64(v int64) Int128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

// Int128FromBig converts b, reporting false when b is outside the int128 range.
func Int128FromBig(b *big.Int) (Int128, bool) {
	if b == nil || b.Cmp(minInt128) < 0 || b.Cmp(maxInt128) > 0 {
		return Int128{}, false
	}
	q, m := new(big.Int).DivMod(b, two64, new(big.Int))
	return Int128{Hi: q.Int64(), Lo: m.Uint64()}, true
}

// Big returns the value as a new big.Int.
func (i Int128) Big() *big.Int {
	v := new(big.Int).Lsh(big.NewInt(i.Hi), 64)
	return v.Add(v, new(big.Int).SetUint64(i.Lo))
}

func (i Int128) String() string { return i.Big().String() }

// Uint128 is an unsigned 128-bit integer: Hi*2^64 + Lo.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Uint128FromBig converts b, reporting false when b is negative or overflows.
func Uint128FromBig(b *big.Int) (Uint128, bool) {
	if b == nil || b.Sign() < 0 || b.Cmp(maxUint128) > 0 {
		return Uint128{}, false
	}
	q, m := new(big.Int).DivMod(b, two64, new(big.Int))
	return Uint128{Hi: q.Uint64(), Lo: m.Uint64()}, true
}

// Big returns the value as a new big.Int.
func (u Uint128) Big() *big.Int {
	v := new(big.Int).Lsh(new(big.Int).SetUint64(u.Hi), 64)
	return v.Add(v, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string { return u.Big().String() }
