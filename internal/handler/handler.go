// Package handler binds and validates HTTP requests, calls the service
// layer and writes JSON responses. Every endpoint runs through Handle.
package handler
