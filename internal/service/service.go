// Package service holds the business rules between handlers and
// repositories: timestamps, cross-record checks and background side effects.
package service
