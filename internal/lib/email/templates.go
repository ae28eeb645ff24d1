package email

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/pkg/errors"
)

// Template names an HTML file under templates/.
type Template string

const (
	// TemplateVisitorArrived corresponds to templates/visitor_arrived.html
	TemplateVisitorArrived Template = "visitor_arrived"
)

//go:embed templates/*.html
var templateFS embed.FS

// Render executes the named template with data.
func Render(name Template, data map[string]string) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+string(name)+".html")
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}

	return body.String(), nil
}

// PreviewData holds sample values for rendering templates locally.
var PreviewData = map[Template]map[string]string{
	TemplateVisitorArrived: {
		"VisitorName": "Mary Jane",
		"VisitorAge":  "27",
		"VisitDate":   "2024-01-15",
		"VisitTime":   "14:30",
		"Assistant":   "Peter Parker",
		"Comments":    "Here for the 3pm interview",
	},
}
