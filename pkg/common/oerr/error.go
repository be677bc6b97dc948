// Copyright 2024 WaterCylinder
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package oerr defines the error codes used across the library.
// Every error carries a stable uint16 code so that callers can match on
// the class of a failure without parsing messages.
package oerr

import (
	"fmt"
)

const (
	// Ok is not an error.
	Ok uint16 = 0

	// Group 1: internal errors
	ErrInternal uint16 = 20101
	ErrNYI      uint16 = 20102
	ErrOOM      uint16 = 20103

	// Group 2: invalid usage
	ErrInvalidArg           uint16 = 20201
	ErrUnsupportedOperation uint16 = 20202
	ErrOutOfBound           uint16 = 20203

	// Group 3: container state
	ErrElementNotExist uint16 = 20301
	ErrEmptyContainer  uint16 = 20302
)

type errorMsgItem struct {
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]errorMsgItem{
	ErrInternal:             {"internal error: %s"},
	ErrNYI:                  {"%s is not yet implemented"},
	ErrOOM:                  {"out of memory: %s"},
	ErrInvalidArg:           {"invalid argument %s, bad value %v"},
	ErrUnsupportedOperation: {"unsupported operation: %s"},
	ErrOutOfBound:           {"out of bound: %s"},
	ErrElementNotExist:      {"element does not exist: %s"},
	ErrEmptyContainer:       {"container %s is empty"},
}

// Error is the concrete error type of the library. Do not construct it
// directly, use the NewXxx functions below.
type Error struct {
	code    uint16
	message string
}

func newError(code uint16, args ...any) *Error {
	item, has := errorMsgRefer[code]
	if !has {
		panic(fmt.Sprintf("not exist error code: %d", code))
	}
	if len(args) == 0 {
		return &Error{code: code, message: item.errorMsgOrFormat}
	}
	return &Error{code: code, message: fmt.Sprintf(item.errorMsgOrFormat, args...)}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

// Is matches two errors by code, so errors.Is works across distinct
// instances carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

// IsErrCode reports whether err is a library error with the given code.
func IsErrCode(err error, code uint16) bool {
	if err == nil {
		return code == Ok
	}
	e, ok := err.(*Error)
	return ok && e.code == code
}

func NewInternal(msg string, args ...any) *Error {
	return newError(ErrInternal, fmt.Sprintf(msg, args...))
}

func NewNYI(msg string, args ...any) *Error {
	return newError(ErrNYI, fmt.Sprintf(msg, args...))
}

func NewOOM(pool string) *Error {
	return newError(ErrOOM, pool)
}

func NewInvalidArg(arg string, val any) *Error {
	return newError(ErrInvalidArg, arg, val)
}

func NewUnsupportedOperation(op string) *Error {
	return newError(ErrUnsupportedOperation, op)
}

func NewOutOfBound(msg string, args ...any) *Error {
	return newError(ErrOutOfBound, fmt.Sprintf(msg, args...))
}

func NewElementNotExist(msg string, args ...any) *Error {
	return newError(ErrElementNotExist, fmt.Sprintf(msg, args...))
}

func NewEmptyContainer(name string) *Error {
	return newError(ErrEmptyContainer, name)
}
