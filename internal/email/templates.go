package email

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"
)

// Templates are compiled at init and addressed by name. Unknown names fall
// back to a generic notification so a miswired call still produces a
// readable message instead of an empty body.

type messageTemplate struct {
	html *template.Template
	text *texttemplate.Template
}

var templates = map[string]messageTemplate{
	"inquiry": {
		html: template.Must(template.New("inquiry").Parse(`<h2>New inquiry</h2>
<p><strong>{{.Name}}</strong> ({{.Email}}) sent a new inquiry{{if .Company}} on behalf of {{.Company}}{{end}}.</p>
{{if .Subject}}<p>Subject: {{.Subject}}</p>{{end}}
<blockquote>{{.Message}}</blockquote>`)),
		text: texttemplate.Must(texttemplate.New("inquiry").Parse(`New inquiry from {{.Name}} ({{.Email}}){{if .Company}}, company: {{.Company}}{{end}}.
{{if .Subject}}Subject: {{.Subject}}
{{end}}
{{.Message}}`)),
	},
	"application": {
		html: template.Must(template.New("application").Parse(`<h2>New job application</h2>
<p><strong>{{.Name}}</strong> ({{.Email}}) applied for <strong>{{.Position}}</strong>.</p>
<p>Reference: {{.ApplicationNumber}}</p>`)),
		text: texttemplate.Must(texttemplate.New("application").Parse(`New job application from {{.Name}} ({{.Email}}) for {{.Position}}.
Reference: {{.ApplicationNumber}}`)),
	},
	"welcome": {
		html: template.Must(template.New("welcome").Parse(`<h2>Welcome, {{.Name}}</h2>
<p>Your administrator account is ready. Sign in with {{.Email}}.</p>`)),
		text: texttemplate.Must(texttemplate.New("welcome").Parse(`Welcome, {{.Name}}. Your administrator account is ready. Sign in with {{.Email}}.`)),
	},
	"password-reset": {
		html: template.Must(template.New("password-reset").Parse(`<h2>Password changed</h2>
<p>The password for {{.Email}} was changed. If this was not you, contact the site administrator immediately.</p>`)),
		text: texttemplate.Must(texttemplate.New("password-reset").Parse(`The password for {{.Email}} was changed. If this was not you, contact the site administrator immediately.`)),
	},
}

var fallback = messageTemplate{
	html: template.Must(template.New("fallback").Parse(`<p>You have a new notification from the website.</p>`)),
	text: texttemplate.Must(texttemplate.New("fallback").Parse(`You have a new notification from the website.`)),
}

// Render produces the HTML and plain-text bodies for the named template.
// It never fails: unknown names and execution errors yield the fallback.
func Render(name string, data map[string]any) (string, string) {
	t, ok := templates[name]
	if !ok {
		t = fallback
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := t.html.Execute(&htmlBuf, data); err != nil {
		return renderFallback()
	}
	if err := t.text.Execute(&textBuf, data); err != nil {
		return renderFallback()
	}
	return htmlBuf.String(), textBuf.String()
}

func renderFallback() (string, string) {
	var htmlBuf, textBuf bytes.Buffer
	// the fallback templates reference no data and cannot fail
	if err := fallback.html.Execute(&htmlBuf, nil); err != nil {
		panic(fmt.Sprintf("fallback template: %v", err))
	}
	if err := fallback.text.Execute(&textBuf, nil); err != nil {
		panic(fmt.Sprintf("fallback template: %v", err))
	}
	return htmlBuf.String(), textBuf.String()
}
