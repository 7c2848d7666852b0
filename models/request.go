// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Method is the HTTP method of an outbound gateway call.
type Method string

// MethodPost is the only method the gateway API uses.
const MethodPost Method = "POST"

// Header is a single request header.
type Header struct {
	Name  string
	Value string
}

// Request describes one outbound gateway call. It is immutable once built:
// accessors hand out copies.
type Request struct {
	url     string
	method  Method
	payload *Map
	headers []Header
}

// NewRequest builds a Request. The payload is deep-copied and a nil payload
// becomes an empty map.
func NewRequest(method Method, url string, payload *Map, headers ...Header) *Request {
	if payload == nil {
		payload = NewMap()
	}

	return &Request{
		url:     url,
		method:  method,
		payload: payload.Clone(),
		headers: slices.Clone(headers),
	}
}

// URL returns the absolute endpoint URL.
func (r *Request) URL() string { return r.url }

// Method returns the HTTP method.
func (r *Request) Method() Method { return r.method }

// Payload returns a copy of the request body map.
func (r *Request) Payload() *Map { return r.payload.Clone() }

// Headers returns the caller-supplied headers in order.
func (r *Request) Headers() []Header { return slices.Clone(r.headers) }

// MarshalPayload serializes the body with key order preserved and without
// HTML escaping.
func (r *Request) MarshalPayload() ([]byte, error) {
	return r.payload.MarshalJSON()
}
