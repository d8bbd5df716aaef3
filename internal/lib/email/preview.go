package email

// PreviewData holds sample values for every template, keyed by template name.
var PreviewData = map[Template]map[string]string{
	TemplateEmployeeWelcome: {
		"Ime":     "Janez",
		"Priimek": "Novak",
		"Polozaj": "Racunovodja",
	},
}
