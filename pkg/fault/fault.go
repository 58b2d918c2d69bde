// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package fault

import (
	"errors"
	"fmt"
)

// Kind identifies the class of failure reported by an Error.
type Kind uint8

const (
	// InvalidEncoding indicates malformed hex input (bad characters, empty or
	// overlong digit strings).
	InvalidEncoding Kind = iota + 1
	// OutOfRange indicates a well-formed integer outside its permitted range,
	// such as a zero private key or one not below the group order.
	OutOfRange
	// DivisionByZero indicates an attempt to invert the additive identity of
	// the field.
	DivisionByZero
	// InvalidPoint indicates a point which either does not lie on the curve,
	// or is the identity where a public key was expected.
	InvalidPoint
)

// String returns the name of this kind.
func (k Kind) String() string {
	switch k {
	case InvalidEncoding:
		return "InvalidEncoding"
	case OutOfRange:
		return "OutOfRange"
	case DivisionByZero:
		return "DivisionByZero"
	case InvalidPoint:
		return "InvalidPoint"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is the single error type returned by key derivation and its supporting
// packages.  Every error carries exactly one Kind.
type Error struct {
	// Classification of this error
	kind Kind
	// Human readable message
	msg string
}

// Sentinel errors, one per kind, for use with errors.Is.  These match any
// Error of the same kind, regardless of message.
var (
	ErrInvalidEncoding = &Error{InvalidEncoding, "invalid encoding"}
	ErrOutOfRange      = &Error{OutOfRange, "out of range"}
	ErrDivisionByZero  = &Error{DivisionByZero, "division by zero"}
	ErrInvalidPoint    = &Error{InvalidPoint, "invalid point"}
)

// New constructs a new error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{kind, fmt.Sprintf(format, args...)}
}

// Kind returns the classification of this error.
func (p *Error) Kind() Kind {
	return p.kind
}

// Message returns the message to be reported.
func (p *Error) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *Error) Error() string {
	return fmt.Sprintf("%s: %s", p.kind, p.msg)
}

// Is reports whether target is an Error of the same kind.
func (p *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.kind == p.kind
	}
	//
	return false
}

// KindOf extracts the kind of the first Error found in err's chain.  If there
// is none, false is returned.
func KindOf(err error) (Kind, bool) {
	var e *Error
	//
	if errors.As(err, &e) {
		return e.kind, true
	}
	//
	return 0, false
}
