// Package http implements the REST API of the LMS server.
//
// Routes live under /api. Public routes cover signup, login, email
// verification and password reset; everything else sits behind the bearer
// token middleware. Trace ids, access logging, request metrics, CORS and
// per-client rate limits are applied here before requests reach the service
// layer.
package http
