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

// Package sqlserver implements rdb.QueryHandler for Microsoft SQL Server over
// the TDS protocol, using github.com/microsoft/go-mssqldb.
//
// A Handler owns exactly one connection. Encryption is always disabled (no TLS
// negotiation), which is a hard requirement of the environments this backend
// targets. Statements use SQL Server's positional placeholders @p1, @p2, ...
//
// Column values are normalized into rdb.DataType:
//
//	TINYINT                         -> U8
//	SMALLINT / INT / BIGINT         -> I16 / I32 / I64
//	REAL / FLOAT                    -> F32 / F64
//	MONEY / SMALLMONEY              -> F64
//	BIT                             -> Bool
//	[N]CHAR / [N]VARCHAR / [N]TEXT  -> String
//	UNIQUEIDENTIFIER                -> String (canonical lowercase form)
//	BINARY / VARBINARY / IMAGE      -> Bytes
//	DECIMAL / NUMERIC               -> I128 (unscaled integer; the scale is dropped)
//	DATETIMEOFFSET                  -> I16 (offset in minutes only)
//	DATETIME                        -> DateTime (1900-01-01 + days + ticks*10/3 ms, UTC)
//	TIME                            -> U64 (100ns increments since midnight)
//	DATE                            -> U32 (days since 0001-01-01)
//
// Any other column type decodes to NULL.
package sqlserver
