package notify

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

const visitHTML = `<h2>New visit request</h2>
<p><strong>{{.Name}}</strong> would like to tour the property.</p>
<table>
  <tr><td>Email</td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
  <tr><td>Phone</td><td>{{.Phone}}</td></tr>
  {{- range .Details}}
  <tr><td>{{.Key}}</td><td>{{.Value}}</td></tr>
  {{- end}}
</table>
{{- if .Message}}
<p>{{.Message}}</p>
{{- end}}
<p><small>Submitted {{.Submitted}}</small></p>
`

const visitText = `New visit request

{{.Name}} would like to tour the property.

Email: {{.Email}}
Phone: {{.Phone}}
{{- range .Details}}
{{.Key}}: {{.Value}}
{{- end}}
{{- if .Message}}

{{.Message}}
{{- end}}

Submitted {{.Submitted}}
`

const generalHTML = `<h2>New {{.Label}}</h2>
<table>
  <tr><td>Name</td><td>{{.Name}}</td></tr>
  <tr><td>Email</td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
  <tr><td>Phone</td><td>{{.Phone}}</td></tr>
  {{- range .Details}}
  <tr><td>{{.Key}}</td><td>{{.Value}}</td></tr>
  {{- end}}
</table>
<p>{{if .Message}}{{.Message}}{{else}}<em>No message provided.</em>{{end}}</p>
<p><small>Submitted {{.Submitted}}</small></p>
`

const generalText = `New {{.Label}}

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
{{- range .Details}}
{{.Key}}: {{.Value}}
{{- end}}

{{if .Message}}{{.Message}}{{else}}No message provided.{{end}}

Submitted {{.Submitted}}
`

const confirmHTML = `<p>Hi {{.Name}},</p>
{{- if .Visit}}
<p>Thanks for requesting a visit. Our leasing team will reach out shortly to confirm a time.</p>
{{- else}}
<p>Thanks for getting in touch. A member of our leasing team will get back to you soon.</p>
{{- end}}
<p>If you need to reach us sooner, just reply to this email.</p>
`

const confirmText = `Hi {{.Name}},

{{if .Visit}}Thanks for requesting a visit. Our leasing team will reach out shortly to confirm a time.{{else}}Thanks for getting in touch. A member of our leasing team will get back to you soon.{{end}}

If you need to reach us sooner, just reply to this email.
`

type templatePair struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func mustPair(name, html, text string) templatePair {
	return templatePair{
		html: htmltemplate.Must(htmltemplate.New(name).Parse(html)),
		text: texttemplate.Must(texttemplate.New(name).Parse(text)),
	}
}

var (
	visitTemplates   = mustPair("visit", visitHTML, visitText)
	generalTemplates = mustPair("general", generalHTML, generalText)
	confirmTemplates = mustPair("confirm", confirmHTML, confirmText)
)
