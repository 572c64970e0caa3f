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

import "fmt"

// ErrorKind is the closed set of handler lifecycle failures.
type ErrorKind int

const (
	// KindNotInitialized means the operation needs a live connection and there is none.
	KindNotInitialized ErrorKind = iota + 1
	// KindInvalidCall means the handler state forbids the operation.
	KindInvalidCall
	// KindUnknown wraps an opaque backend or protocol failure.
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotInitialized:
		return "Not Initialized"
	case KindInvalidCall:
		return "Invalid Call"
	case KindUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by QueryHandler implementations. Err, when set, is the
// underlying protocol or I/O failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Sentinels for errors.Is; they match any *Error of the same Kind.
var (
	ErrNotInitialized = &Error{Kind: KindNotInitialized}
	ErrInvalidCall    = &Error{Kind: KindInvalidCall}
	ErrUnknown        = &Error{Kind: KindUnknown}
)

// NotInitialized builds a KindNotInitialized error.
func NotInitialized(msg string) *Error { return &Error{Kind: KindNotInitialized, Message: msg} }

// InvalidCall builds a KindInvalidCall error.
func InvalidCall(msg string) *Error { return &Error{Kind: KindInvalidCall, Message: msg} }

// Unknown wraps cause as a KindUnknown error. A nil cause yields nil.
func Unknown(msg string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: KindUnknown, Message: msg, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind so errors.Is(err, ErrNotInitialized) works for any message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
