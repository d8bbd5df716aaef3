// Package model holds the domain records persisted by the store:
// expenses (stroski), employees (zaposleni) and financial reports.
//
// JSON tags follow the public API, which keeps the Slovenian field names
// for employees and reports.
package model
