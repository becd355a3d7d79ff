// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoIdentity means a protected handler ran without the auth
	// middleware having stored the caller identity.
	ErrNoIdentity = errors.New("no caller identity in request context")

	// ErrInvalidJSON is returned for request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrInvalidID is returned for a malformed numeric path parameter.
	ErrInvalidID = errors.New("invalid id")
)
