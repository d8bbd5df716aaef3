package email

// SendEmployeeWelcomeEmail greets a newly registered employee.
func (c *Client) SendEmployeeWelcomeEmail(to, ime, priimek, polozaj string) error {
	data := map[string]string{
		"Ime":     ime,
		"Priimek": priimek,
		"Polozaj": polozaj,
	}

	return c.SendEmail(to, "Dobrodosli v evidenci zaposlenih", TemplateEmployeeWelcome, data)
}
