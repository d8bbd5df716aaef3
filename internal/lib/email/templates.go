package email

import (
	"embed"
	"html/template"
)

// Template names an HTML template under templates/.
type Template string

const (
	// TemplateEmployeeWelcome corresponds to templates/employee_welcome.html
	TemplateEmployeeWelcome Template = "employee_welcome"
)

//go:embed templates/*.html
var templateFS embed.FS

// templates is parsed once; a broken template fails at startup, not on send.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
