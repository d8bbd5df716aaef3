// Package errs defines the error types returned to API clients.
//
// Every handler, service and repository error that should reach a client
// is an *HTTPError, so the global error handler can render one consistent
// JSON shape: code, message, status, optional field errors and an optional
// client action.
package errs
