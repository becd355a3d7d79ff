// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

const notFoundMessage = "Not found"

// methodNotAllowed is installed as [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 it answers 404 with a JSON error body, so a wrong
// method does not reveal that the path exists.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeErrorMessage(w, http.StatusNotFound, notFoundMessage)
}
