// Package client provides the backend abstraction loom creates models
// against, plus the two built-in backends.
//
// The Client interface is deliberately narrow: a single POST-shaped call
// taking an endpoint path and a request body, returning the response's data
// payload or an error. Transport concerns (retries, backpressure,
// authentication schemes, schema validation) belong to the backend, not to
// the registry or creators.
//
// # Backends
//
// Two implementations ship with loom:
//
//   - HTTP: a JSON-over-HTTP client for APIs that wrap responses in a
//     {"data": ...} envelope and report failures as RFC 9457
//     application/problem+json bodies.
//   - Surreal: writes records straight into a SurrealDB instance, the way a
//     test database is seeded before handlers are exercised. Intended for
//     disposable test databases only.
//
// # Error Handling
//
// Backend failures propagate unchanged to the caller of the registry; this
// package never retries or logs. HTTP error responses decode into *Problem,
// which implements error, so callers can inspect status and code:
//
//	var problem *client.Problem
//	if errors.As(err, &problem) && problem.Status == http.StatusConflict {
//	    // duplicate seed data
//	}
package client
