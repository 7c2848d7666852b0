// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// DefaultGatewayErrorMessage is used when a failed gateway response carries no
// error.message of its own.
const DefaultGatewayErrorMessage = "An error occurred"

var (
	// ErrInvalidArgument marks input rejected before any network call is made:
	// malformed API keys, incomplete card token data, bad key paths.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidKeyPath is returned for key paths that cannot be parsed.
	ErrInvalidKeyPath = fmt.Errorf("%w: invalid key path", ErrInvalidArgument)

	// ErrIndexOutOfRange is returned when a bracketed index addresses a list
	// element that does not exist on read or remove, or lies past the end of
	// the list on write.
	ErrIndexOutOfRange = errors.New("list index out of range")
)

// PathTypeError reports a key path segment that resolved to a value of the
// wrong shape, e.g. descending into a string as if it were a map.
type PathTypeError struct {
	Path     string
	Segment  string
	Expected string
	Got      string
}

func newPathTypeError(path string, seg segment, expected string, got any) *PathTypeError {
	return &PathTypeError{
		Path:     path,
		Segment:  seg.raw,
		Expected: expected,
		Got:      typeName(got),
	}
}

func (e *PathTypeError) Error() string {
	return fmt.Sprintf("key path %q: segment %q is %s, expected %s", e.Path, e.Segment, e.Got, e.Expected)
}

// GatewayError is a completed HTTPS call answered with a non-2xx status.
type GatewayError struct {
	Message    string
	StatusCode int
	// Body is the full parsed response body; never nil.
	Body *Map
}

// NewGatewayError builds a GatewayError from a parsed failure body, taking the
// message from error.message.
func NewGatewayError(statusCode int, body *Map) *GatewayError {
	if body == nil {
		body = NewMap()
	}

	message := DefaultGatewayErrorMessage
	if msg, ok := body.GetString("error.message"); ok && msg != "" {
		message = msg
	}

	return &GatewayError{Message: message, StatusCode: statusCode, Body: body}
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error %d: %s", e.StatusCode, e.Message)
}

// TransportError wraps a failure that prevented the HTTPS call from
// completing: DNS, TLS handshake, timeouts, I/O.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a response body that is not a JSON object.
type ParseError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response body (status %d): %v", e.StatusCode, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
