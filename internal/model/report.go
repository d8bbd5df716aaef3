package model

import "time"

// FinancialReport is a financial report (financno porocilo).
//
// Avtor is a weak reference: the id of an Employee, or empty. The store
// never embeds or owns the employee.
type FinancialReport struct {
	ID      string    `json:"id"`
	Naslov  string    `json:"naslov"`
	Datum   time.Time `json:"datum"`
	Vsebina string    `json:"vsebina"`
	Avtor   string    `json:"avtor,omitempty"`
}
