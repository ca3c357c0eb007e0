// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr classifies the core errors. Each Error wraps a cause
// (usually one of the model sentinel errors) and records its Kind and
// the HTTP status code which should be reported to REST clients, so
// adapters may serialize errors without knowing about the use cases.
package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind enumerates the error classes which may be produced by the
// use cases.
type Kind int

// Valid values for the Kind enum.
const (
	KindInternal     Kind = iota // persistence or unexpected failures
	KindValidation               // malformed or missing input
	KindNotFound                 // missing client, parking, or session
	KindInvalidState             // closed parking, no places, no card
	KindConflict                 // duplicated active session
	KindPayment                  // payment gateway declined a charge
)

// String returns the name of the k error kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not-found"
	case KindInvalidState:
		return "invalid-state"
	case KindConflict:
		return "conflict"
	case KindPayment:
		return "payment"
	default:
		return "internal"
	}
}

type Error struct {
	Err            error
	Kind           Kind
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func Validation(err error) *Error {
	return &Error{Err: err, Kind: KindValidation, HTTPStatusCode: http.StatusBadRequest}
}

func NotFound(err error) *Error {
	return &Error{Err: err, Kind: KindNotFound, HTTPStatusCode: http.StatusNotFound}
}

func InvalidState(err error) *Error {
	return &Error{Err: err, Kind: KindInvalidState, HTTPStatusCode: http.StatusBadRequest}
}

// Conflict is reported with the 400 status code (and not 409) because
// REST clients of the parking service already expect that.
func Conflict(err error) *Error {
	return &Error{Err: err, Kind: KindConflict, HTTPStatusCode: http.StatusBadRequest}
}

func Payment(err error) *Error {
	return &Error{Err: err, Kind: KindPayment, HTTPStatusCode: http.StatusPaymentRequired}
}

func Internal(err error) *Error {
	return &Error{Err: err, Kind: KindInternal, HTTPStatusCode: http.StatusInternalServerError}
}

// KindOf returns the Kind of the first *Error in the err chain.
// Errors which were not classified are treated as internal ones.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}
