// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr contains the errors which are produced by the use cases
// and carry an HTTP status code, so the restful adapters can report
// them without knowing which use case has failed.
package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error wraps Err with the HTTP status code which should be reported
// for it. Errors from the admin API keep the upstream status code.
type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// StatusOf returns the status code of the outermost *Error in the err
// chain. The ok result is false if err contains no *Error.
func StatusOf(err error) (code int, ok bool) {
	var ce *Error
	if !errors.As(err, &ce) {
		return 0, false
	}
	return ce.HTTPStatusCode, true
}

// HasStatus reports whether err carries the given status code.
func HasStatus(err error, code int) bool {
	c, ok := StatusOf(err)
	return ok && c == code
}

// BadRequest is used for invalid query parameters, forms, and terms.
func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

// NotFound is used for unknown vehicles, carts, and line items.
func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// BadGateway is used when the admin API or the inventory source fails.
func BadGateway(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadGateway}
}
