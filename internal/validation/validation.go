// Package validation binds request payloads and turns validation failures
// into 400 errs.HTTPError responses with field-level detail.
//
// Request types declare their rules either as validator tags checked with
// Struct, or in code by returning CustomValidationErrors.
package validation
