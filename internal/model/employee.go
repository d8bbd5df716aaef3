package model

import "time"

// Employee is an employee record (zaposleni). All four text fields are
// required on creation.
type Employee struct {
	ID        string    `json:"id"`
	Ime       string    `json:"ime"`
	Priimek   string    `json:"priimek"`
	Email     string    `json:"email"`
	Polozaj   string    `json:"polozaj"`
	CreatedAt time.Time `json:"createdAt"`
}
