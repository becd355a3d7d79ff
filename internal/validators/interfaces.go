// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the request bodies accepted by the LMS API
// before they reach storage.
//
// Every failure is one of the sentinel errors in errors.go, so the HTTP layer
// can turn it into a 400 with a stable message. Validation never normalises
// its input; services trim and lower-case emails themselves.
package validators

import "context"

// Validator checks a request value. When fields is non-empty only the named
// fields (see the Field* constants) are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
