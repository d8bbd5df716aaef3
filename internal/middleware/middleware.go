// Package middleware holds the echo middleware shared by every route:
// request ids, the request-scoped logger, tracing, request logging, CORS,
// body and rate limits, panic recovery and the global error handler.
package middleware
