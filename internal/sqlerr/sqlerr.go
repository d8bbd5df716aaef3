// Package sqlerr translates postgres driver errors into client errors.
//
// Raw SQLSTATE codes become a small Code enum, and HandleError turns
// constraint violations into 400s with readable messages (for example a
// foreign key violation on financial_reports.author_id becomes
// "The referenced Author does not exist").
package sqlerr
